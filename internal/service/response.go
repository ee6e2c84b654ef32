package service

import "github.com/Behyna/smsrouter/internal/model"

type RouteResult struct {
	Destination model.Destination
	Message     model.OutboundMessage
	Forward     model.ForwardResult
	Triggered   bool
	// Err is set when routing was aborted by an internal fault.
	Err error
}

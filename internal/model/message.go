package model

type InboundEvent struct {
	RequestID string
	From      string
	Text      string
}

// Inert reports whether the event lacks a sender or text and must not be routed.
func (e InboundEvent) Inert() bool {
	return e.From == "" || e.Text == ""
}

type OutboundMessage struct {
	To   string
	Body string
}

type ForwardStatus string

const (
	ForwardStatusAccepted ForwardStatus = "ACCEPTED"
	ForwardStatusRejected ForwardStatus = "REJECTED"
	ForwardStatusFailed   ForwardStatus = "FAILED"
)

type ForwardResult struct {
	Status ForwardStatus
	Code   int
	Err    error
}

func (r ForwardResult) Accepted() bool {
	return r.Status == ForwardStatusAccepted
}

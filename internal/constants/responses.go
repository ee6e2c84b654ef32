package constants

// Webhook acknowledgement bodies. The webhook always answers 200 with one of these.
const (
	ResponseOK      = "OK"
	ResponseIgnored = "IGNORED"
)

// Inbound event outcomes used in logs and metrics.
const (
	OutcomeRouted  = "routed"
	OutcomeIgnored = "ignored"
	OutcomeFailed  = "failed"
)

const (
	FallbackLabelSuffix = " (Fallback)"
	ServiceName         = "smsrouter"
)

package model

// ListID names a provider-managed subscriber list. Identifiers happen to be
// phone-number shaped but are opaque and must never be normalized.
type ListID string

type ListBinding struct {
	ListID ListID
	Number string
	Label  string
}

type FallbackBinding struct {
	Number string
	Label  string
}

// Routing is built once at startup and only read afterwards.
type Routing struct {
	Lists    []ListBinding
	Fallback FallbackBinding
}

func (r Routing) ListIDs() []ListID {
	ids := make([]ListID, len(r.Lists))
	for i, binding := range r.Lists {
		ids[i] = binding.ListID
	}
	return ids
}

type MembershipResult struct {
	ListID ListID
	Member bool
	// Err is set when the roster could not be fetched; Member is then false.
	Err error
}

type Destination struct {
	Number      string
	AreaLabel   string
	MatchedList *ListID
	Fallback    bool
}

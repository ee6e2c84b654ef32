package simpletexting

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Contact struct {
	Phone     string `json:"phone"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// ContactList decodes either a bare JSON array of contacts or an object
// wrapping them under "contacts".
type ContactList []Contact

func (l *ContactList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		var contacts []Contact
		if err := json.Unmarshal(trimmed, &contacts); err != nil {
			return err
		}
		*l = contacts
		return nil
	case '{':
		var envelope struct {
			Contacts []Contact `json:"contacts"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return err
		}
		*l = envelope.Contacts
		return nil
	default:
		return fmt.Errorf("unexpected contact list payload starting with %q", trimmed[0])
	}
}

type SendResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (r SendResponse) Accepted() bool {
	return r.Code == AcceptedCode
}

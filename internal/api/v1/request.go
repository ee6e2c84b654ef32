package v1

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Behyna/smsrouter/internal/model"
	"github.com/gofiber/fiber/v2"
)

// field accepts a JSON string or number and ignores any other JSON value.
type field string

func (f *field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = field(s)
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		*f = field(data)
	default:
		*f = ""
	}
	return nil
}

type InboundValues struct {
	ContactPhone field `json:"contactPhone"`
	Text         field `json:"text"`
	Message      field `json:"message"`
}

// InboundRequest covers every body shape the provider is known to send: the
// fields nested under "values" or at the top level.
type InboundRequest struct {
	Values       InboundValues `json:"values"`
	ContactPhone field         `json:"contactPhone"`
	From         field         `json:"from"`
	Phone        field         `json:"phone"`
	Text         field         `json:"text"`
	Message      field         `json:"message"`
}

func (r InboundRequest) Sender() string {
	return firstNonEmpty(r.Values.ContactPhone, r.ContactPhone, r.From, r.Phone)
}

func (r InboundRequest) Body() string {
	return firstNonEmpty(r.Values.Text, r.Text, r.Values.Message, r.Message)
}

func (r InboundRequest) Event(requestID string) model.InboundEvent {
	return model.InboundEvent{RequestID: requestID, From: r.Sender(), Text: r.Body()}
}

// ParseInboundRequest decodes JSON bodies and falls back to form or query
// values for everything else. Nested form keys may be written values[key] or
// values.key.
func ParseInboundRequest(c *fiber.Ctx) (InboundRequest, error) {
	var request InboundRequest

	if strings.Contains(strings.ToLower(c.Get(fiber.HeaderContentType)), "json") {
		if len(bytes.TrimSpace(c.Body())) == 0 {
			return request, nil
		}
		err := json.Unmarshal(c.Body(), &request)
		return request, err
	}

	request.Values.ContactPhone = formField(c, "values[contactPhone]", "values.contactPhone")
	request.Values.Text = formField(c, "values[text]", "values.text")
	request.Values.Message = formField(c, "values[message]", "values.message")
	request.ContactPhone = formField(c, "contactPhone")
	request.From = formField(c, "from")
	request.Phone = formField(c, "phone")
	request.Text = formField(c, "text")
	request.Message = formField(c, "message")

	return request, nil
}

func formField(c *fiber.Ctx, keys ...string) field {
	for _, key := range keys {
		if v := c.FormValue(key); v != "" {
			return field(v)
		}
	}
	return ""
}

func firstNonEmpty(values ...field) string {
	for _, v := range values {
		if v != "" {
			return string(v)
		}
	}
	return ""
}

package config

import (
	"fmt"
	"strings"

	"github.com/Behyna/smsrouter/internal/model"
)

// NewRouting resolves the configured lists and fallback against the per-area
// destination numbers.
func NewRouting(cfg *Config) (model.Routing, error) {
	routing := model.Routing{Lists: make([]model.ListBinding, 0, len(cfg.Routing.Lists))}
	seen := make(map[model.ListID]struct{}, len(cfg.Routing.Lists))

	for _, list := range cfg.Routing.Lists {
		id := model.ListID(list.ID)
		if _, dup := seen[id]; dup {
			return model.Routing{}, fmt.Errorf("list %q configured more than once", list.ID)
		}
		seen[id] = struct{}{}

		number, err := cfg.Routing.number(list.Area)
		if err != nil {
			return model.Routing{}, fmt.Errorf("list %q: %w", list.ID, err)
		}

		routing.Lists = append(routing.Lists, model.ListBinding{ListID: id, Number: number, Label: list.Label})
	}

	number, err := cfg.Routing.number(cfg.Routing.Fallback.Area)
	if err != nil {
		return model.Routing{}, fmt.Errorf("fallback: %w", err)
	}
	routing.Fallback = model.FallbackBinding{Number: number, Label: cfg.Routing.Fallback.Label}

	return routing, nil
}

func (r Routing) number(area string) (string, error) {
	number := strings.TrimSpace(r.Numbers[strings.ToLower(area)])
	if number == "" {
		return "", fmt.Errorf("no destination number for area %q", area)
	}
	return number, nil
}

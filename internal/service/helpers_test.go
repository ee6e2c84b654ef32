package service_test

import (
	"time"

	"github.com/Behyna/smsrouter/internal/config"
	"github.com/Behyna/smsrouter/internal/metrics"
	"github.com/Behyna/smsrouter/internal/model"
)

func newMetrics() *metrics.Metrics {
	return metrics.NewMetrics(metrics.NewRegistry())
}

func testConfig() *config.Config {
	return &config.Config{
		Routing: config.Routing{LookupTimeout: time.Second, SendTimeout: time.Second},
		Message: config.Message{Header: "APS Lead", Timezone: "America/Chicago", ZoneLabel: "CT"},
		Autoresponder: config.Autoresponder{Trigger: "north"},
	}
}

func testRouting() model.Routing {
	return model.Routing{
		Lists: []model.ListBinding{
			{ListID: "502-356-0918", Number: "NORTH_NUMBER", Label: "North"},
			{ListID: "865-591-2993", Number: "SOUTH_NUMBER", Label: "South"},
			{ListID: "803-719-0784", Number: "EAST_NUMBER", Label: "East"},
			{ListID: "904-728-4226", Number: "WEST_NUMBER", Label: "West"},
			{ListID: "864-354-3098", Number: "CENTRAL_NUMBER", Label: "Central"},
		},
		Fallback: model.FallbackBinding{Number: "NORTH_NUMBER", Label: "North"},
	}
}

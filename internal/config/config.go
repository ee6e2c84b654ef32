package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/smsrouter/pkg/simpletexting"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "SMSROUTER"

type Config struct {
	API           API                  `mapstructure:"api"`
	Provider      simpletexting.Config `mapstructure:"provider"`
	Routing       Routing              `mapstructure:"routing"`
	Message       Message              `mapstructure:"message"`
	Autoresponder Autoresponder        `mapstructure:"autoresponder"`
	Metrics       Metrics              `mapstructure:"metrics"`
}

type API struct {
	Port string `mapstructure:"port" validate:"required,numeric"`
}

func (a API) Address() string {
	return ":" + a.Port
}

type Routing struct {
	MarketingNumber string            `mapstructure:"marketing_number"`
	Numbers         map[string]string `mapstructure:"numbers"`
	Lists           []List            `mapstructure:"lists" validate:"required,min=1,unique=ID,dive"`
	Fallback        Fallback          `mapstructure:"fallback"`
	LookupTimeout   time.Duration     `mapstructure:"lookup_timeout" validate:"gte=0"`
	SendTimeout     time.Duration     `mapstructure:"send_timeout" validate:"gte=0"`
}

// List binds a provider list to the area whose number receives its forwards.
type List struct {
	ID    string `mapstructure:"id" validate:"required"`
	Area  string `mapstructure:"area" validate:"required"`
	Label string `mapstructure:"label" validate:"required"`
}

type Fallback struct {
	Area  string `mapstructure:"area" validate:"required"`
	Label string `mapstructure:"label" validate:"required"`
}

type Message struct {
	Header    string `mapstructure:"header" validate:"required"`
	Timezone  string `mapstructure:"timezone" validate:"required"`
	ZoneLabel string `mapstructure:"zone_label"`
}

type Autoresponder struct {
	Trigger string `mapstructure:"trigger"`
}

type Metrics struct {
	SystemInterval time.Duration `mapstructure:"system_interval" validate:"gt=0"`
}

// envBindings maps deployment environment variables onto config keys.
var envBindings = map[string]string{
	"api.port":                 "PORT",
	"provider.token":           "ST_TOKEN",
	"routing.marketing_number": "MARKETING_NUMBER",
	"routing.numbers.north":    "NORTH_NUMBER",
	"routing.numbers.south":    "SOUTH_NUMBER",
	"routing.numbers.east":     "EAST_NUMBER",
	"routing.numbers.west":     "WEST_NUMBER",
	"routing.numbers.central":  "CENTRAL_NUMBER",
}

func Load() (*Config, error) {
	return LoadWithPaths("./config")
}

// LoadWithPaths reads config.yml from the first path that has one. A missing
// file is not an error: defaults and the environment are enough to run.
func LoadWithPaths(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := NewRouting(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", "3000")

	v.SetDefault("provider.base_url", "https://app2.simpletexting.com")
	v.SetDefault("provider.token", "")
	v.SetDefault("provider.timeout", 10*time.Second)

	v.SetDefault("routing.marketing_number", "")
	for _, area := range []string{"north", "south", "east", "west", "central"} {
		v.SetDefault("routing.numbers."+area, "")
	}
	v.SetDefault("routing.lists", []map[string]any{
		{"id": "502-356-0918", "area": "north", "label": "North"},
		{"id": "865-591-2993", "area": "south", "label": "South"},
		{"id": "803-719-0784", "area": "east", "label": "East"},
		{"id": "904-728-4226", "area": "west", "label": "West"},
		{"id": "864-354-3098", "area": "central", "label": "Central"},
	})
	v.SetDefault("routing.fallback.area", "north")
	v.SetDefault("routing.fallback.label", "North")
	v.SetDefault("routing.lookup_timeout", 8*time.Second)
	v.SetDefault("routing.send_timeout", 8*time.Second)

	v.SetDefault("message.header", "APS Lead")
	v.SetDefault("message.timezone", "America/Chicago")
	v.SetDefault("message.zone_label", "CT")

	v.SetDefault("autoresponder.trigger", "north")

	v.SetDefault("metrics.system_interval", 30*time.Second)
}

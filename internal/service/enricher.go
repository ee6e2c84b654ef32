package service

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/Behyna/smsrouter/internal/config"
	"go.uber.org/zap"
)

const (
	maxKeywordLength = 32
	maxBodyLength    = 160

	stampLayout = "1/2/06, 3:04 PM"
)

type EnricherService interface {
	Enrich(sender, text, areaLabel string) string
}

type enricher struct {
	header    string
	zoneLabel string
	location  *time.Location
	now       func() time.Time
}

func NewEnricherService(cfg *config.Config, logger *zap.Logger) EnricherService {
	return NewEnricher(cfg.Message, time.Now, logger)
}

// NewEnricher builds an enricher reading the clock from now. When the
// configured zone cannot be loaded timestamps fall back to RFC 3339 in UTC.
func NewEnricher(cfg config.Message, now func() time.Time, logger *zap.Logger) EnricherService {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("Failed to load message timezone, using RFC 3339 UTC timestamps",
			zap.String("timezone", cfg.Timezone),
			zap.Error(err))
		location = nil
	}

	return &enricher{header: cfg.Header, zoneLabel: cfg.ZoneLabel, location: location, now: now}
}

// Enrich renders the forwarded body:
//
//	<header> (<area>) — <stamp> <zone>
//	From: <sender>
//	Keyword: <KEYWORD>
//	Msg: <text>
//
// The keyword line is left out when the text has no tokens.
func (e *enricher) Enrich(sender, text, areaLabel string) string {
	var b strings.Builder

	b.WriteString(e.header + " (" + areaLabel + ") — " + e.stamp())
	if e.zoneLabel != "" {
		b.WriteString(" " + e.zoneLabel)
	}
	b.WriteString("\nFrom: " + sender + "\n")

	if keyword := ExtractKeyword(text); keyword != "" {
		b.WriteString("Keyword: " + keyword + "\n")
	}

	b.WriteString("Msg: " + Truncate(text, maxBodyLength))

	return b.String()
}

func (e *enricher) stamp() string {
	now := e.now()
	if e.location == nil {
		return now.UTC().Format(time.RFC3339)
	}
	return now.In(e.location).Format(stampLayout)
}

// ExtractKeyword returns the first whitespace-delimited token of text,
// upper-cased and capped at 32 characters.
func ExtractKeyword(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return Truncate(strings.ToUpper(fields[0]), maxKeywordLength)
}

// Truncate keeps at most limit characters of s without adding a marker.
func Truncate(s string, limit int) string {
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}

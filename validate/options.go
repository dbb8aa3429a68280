package validate

import (
	"go.uber.org/zap"

	"github.com/dshills/gox12/partner"
	"github.com/dshills/gox12/x12"
)

// config holds the Validator's configuration.
type config struct {
	strictness    x12.Strictness
	logger        *zap.SugaredLogger
	partnerLookup partner.Lookup
}

func defaultConfig() config {
	return config{
		strictness: x12.StrictnessStandard,
		logger:     zap.NewNop().Sugar(),
	}
}

// Option is a functional option for configuring a Validator.
type Option func(*config)

// WithStrictness sets how aggressively structural non-conformance
// (segments/loops the schema does not define at their position)
// escalates in severity; cardinality findings are errors at every
// level. The default is x12.StrictnessStandard.
func WithStrictness(s x12.Strictness) Option {
	return func(c *config) { c.strictness = s }
}

// WithLogger injects a logger into the Validator's configuration. The
// Validator stores it but writes no messages to it. The default is a
// no-op logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPartnerLookup configures a partner directory. When set, Validate
// resolves the interchange's sender (ISA06/ISA08) against it and, on a
// match, uses that partner's Profile.Strictness for the call instead
// of the strictness configured by WithStrictness.
func WithPartnerLookup(l partner.Lookup) Option {
	return func(c *config) { c.partnerLookup = l }
}

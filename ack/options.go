package ack

import (
	"fmt"
	"time"
)

// config holds a synthesizer's injectable dependencies, ported from
// the teacher's builder config: a clock and a control number
// generator, both overridable for deterministic tests.
type config struct {
	timeFunc      func() time.Time
	controlIDFunc func() string
}

func defaultConfig() config {
	cfg := config{timeFunc: time.Now}
	cfg.controlIDFunc = func() string {
		return fmt.Sprintf("%09d", cfg.timeFunc().UnixNano()%1000000000)
	}
	return cfg
}

// Option configures a synthesizer.
type Option func(*config)

// WithTimeFunc sets a custom time source, for deterministic ISA
// date/time and default control number generation in tests.
func WithTimeFunc(fn func() time.Time) Option {
	return func(c *config) {
		c.timeFunc = fn
	}
}

// WithControlIDFunc sets a custom control number generator, used for
// the acknowledgment interchange's own ISA13/GS06/ST02 control
// numbers (the AK1/AK2 control numbers always mirror the numbers from
// the interchange being acknowledged, never this generator).
func WithControlIDFunc(fn func() string) Option {
	return func(c *config) {
		c.controlIDFunc = fn
	}
}

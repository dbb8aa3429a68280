package generate

import "github.com/dshills/gox12/x12"

// generatorConfig holds a Generator's configuration: the fallback
// delimiter set used when the Interchange being written doesn't carry
// a valid one of its own, and an optional release character for
// escaping values that collide with an active delimiter.
type generatorConfig struct {
	delimiters       x12.Delimiters
	releaseCharacter byte
}

func defaultConfig() generatorConfig {
	return generatorConfig{delimiters: x12.DefaultDelimiters()}
}

// Option configures a Generator.
type Option func(*generatorConfig)

// WithDelimiters sets the fallback delimiter set used when an
// Interchange's own Delimiters field is not a valid (distinct,
// non-colliding) set.
func WithDelimiters(d x12.Delimiters) Option {
	return func(c *generatorConfig) {
		c.delimiters = d
	}
}

// WithReleaseCharacter configures a release character: any element
// value containing a byte that collides with an active delimiter is
// escaped with it before being written, mirroring tokenize's
// WithReleaseCharacter on the read side.
func WithReleaseCharacter(b byte) Option {
	return func(c *generatorConfig) {
		c.releaseCharacter = b
	}
}

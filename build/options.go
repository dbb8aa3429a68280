package build

import "go.uber.org/zap"

// defaultMaxSegments bounds the total number of segments a single
// BuildContext call will consume before reporting x12.ErrTooManySegs,
// mirroring the teacher's parse.defaultMaxSegments DoS-budget idiom.
const defaultMaxSegments = 100000

// builderConfig holds the Builder's configuration.
type builderConfig struct {
	maxSegments      int
	releaseCharacter byte
	logger           *zap.SugaredLogger
}

func defaultConfig() builderConfig {
	return builderConfig{
		maxSegments: defaultMaxSegments,
		logger:      zap.NewNop().Sugar(),
	}
}

// Option is a functional option for configuring a Builder.
type Option func(*builderConfig)

// WithMaxSegments sets the maximum number of segments a Builder will
// consume from a single interchange before failing with
// x12.ErrTooManySegs. Values <= 0 are ignored.
func WithMaxSegments(limit int) Option {
	return func(c *builderConfig) {
		if limit > 0 {
			c.maxSegments = limit
		}
	}
}

// WithReleaseCharacter configures the release (escape) character used
// when tokenizing segments, passed through to the tokenizer. A zero
// byte disables escape handling.
func WithReleaseCharacter(b byte) Option {
	return func(c *builderConfig) {
		c.releaseCharacter = b
	}
}

// WithLogger injects a logger into the Builder's configuration. The
// Builder stores it but writes no messages to it. The default is a
// no-op logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

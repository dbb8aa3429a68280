package stream

import (
	"go.uber.org/zap"

	"github.com/dshills/gox12/build"
)

// defaultMaxSegments bounds the number of segments a single
// transaction set will consume before reporting x12.ErrTooManySegs,
// the same DoS-budget idiom package build applies per interchange.
const defaultMaxSegments = 100000

type readerConfig struct {
	maxSegments      int
	releaseCharacter byte
	logger           *zap.SugaredLogger
}

func defaultConfig() readerConfig {
	return readerConfig{
		maxSegments: defaultMaxSegments,
		logger:      zap.NewNop().Sugar(),
	}
}

// buildOptions translates this package's configuration into the
// build.Option values the embedded build.Builder is constructed with,
// so a Reader's per-transaction assembly honors the same limits.
func (c readerConfig) buildOptions() []build.Option {
	opts := []build.Option{build.WithMaxSegments(c.maxSegments), build.WithLogger(c.logger)}
	if c.releaseCharacter != 0 {
		opts = append(opts, build.WithReleaseCharacter(c.releaseCharacter))
	}
	return opts
}

// Option configures a Reader.
type Option func(*readerConfig)

// WithMaxSegments sets the maximum number of segments a single
// transaction set may contain before Scan reports x12.ErrTooManySegs.
func WithMaxSegments(limit int) Option {
	return func(c *readerConfig) {
		if limit > 0 {
			c.maxSegments = limit
		}
	}
}

// WithReleaseCharacter configures the release (escape) character used
// when tokenizing segments. A zero byte disables escape handling.
func WithReleaseCharacter(b byte) Option {
	return func(c *readerConfig) {
		c.releaseCharacter = b
	}
}

// WithLogger injects a logger, passed on to the embedded build.Builder,
// which stores it but writes no messages to it. The default is a
// no-op logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *readerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

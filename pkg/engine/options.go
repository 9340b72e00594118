package engine

import "go.uber.org/zap"

// Option configures a Board at construction time.
type Option func(*Board)

// WithLogger makes the Board report move rejections and result
// transitions to l instead of the package default (which discards
// them).
func WithLogger(l *zap.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

func applyOptions(b *Board, opts []Option) {
	b.logger = defaultLogger
	for _, opt := range opts {
		opt(b)
	}
}

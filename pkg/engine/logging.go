package engine

import (
	"go.uber.org/zap"

	"github.com/kbhawesh/chessrules/pkg/move"
)

// defaultLogger discards everything; engines log nothing unless a
// caller opts in with WithLogger.
var defaultLogger = zap.NewNop()

// SetLogger installs l as the package-wide default used by Boards
// constructed without an explicit WithLogger option. Tests and
// long-running hosts that want every Board to share one sink can call
// this once at startup instead of passing the option everywhere.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	defaultLogger = l
}

func zapMoveFields(m move.Move, reason error) []zap.Field {
	return []zap.Field{
		zap.String("move", m.String()),
		zap.Error(reason),
	}
}

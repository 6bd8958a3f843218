package nodeflow

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger receives gesture transitions at debug level and tree warnings.
// Replace it with SetLogger.
var logger = newLogger(os.Stderr, log.WarnLevel)

// globalDebug mirrors the most recently set Editor debug flag so that node
// operations (which lack an Editor pointer) can check it cheaply.
var globalDebug bool

// newLogger creates a logger with the package prefix and short timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "nodeflow",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// SetLogger replaces the package logger. Passing nil restores the default
// stderr logger at warn level.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newLogger(os.Stderr, log.WarnLevel)
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("nodeflow debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold", "node", n.Name, "depth", depth, "max", debugMaxTreeDepth)
	}
}

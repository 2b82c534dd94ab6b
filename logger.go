package annoy

import "github.com/go-annoy/annoygo/internal/core"

// Logger receives rare, debug-level diagnostics — currently only an item
// leaf (nDescendants == 1) reached directly during tree descent, logged
// if it is ever actually hit. Library code never logs anything else; it
// returns errors instead.
type Logger = core.Logger

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}

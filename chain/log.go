package chain

import (
	"github.com/btcsuite/btclog/v2"
	"github.com/davecgh/go-spew/spew"
)

// Subsystem defines the logging code for this subsystem.
const Subsystem = "CHAN"

// log is a logger that is initialized with the btclog.Disabled logger. This
// means the package will not perform any logging by default until the caller
// requests it.
var log btclog.Logger

// The default amount of logging is none.
func init() {
	DisableLog()
}

// DisableLog disables all logging output.
func DisableLog() {
	UseLogger(btclog.Disabled)
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// logClosure defers an expensive formatting operation until the logger
// actually prints the line.
type logClosure func() string

func (c logClosure) String() string {
	return c()
}

// spewClosure returns a logClosure over spew.Sdump(a).
func spewClosure(a any) logClosure {
	return func() string {
		return spew.Sdump(a)
	}
}

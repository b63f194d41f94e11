package layered

import (
	"context"
	"log/slog"

	"github.com/zeebo/errs"
)

var (
	// Error is the class of all errors returned by strict parsing and validation.
	Error = errs.Class("layered")

	// Diagnostics receives a debug record each time an invalid input is silently coerced,
	// for instance a NaN, an unparseable string, or a division by zero.
	// Nil disables diagnostics.
	// This variable is not thread-safe, so this should be changed on program start.
	Diagnostics *slog.Logger
)

func diagnose(msg string, args ...any) {
	if Diagnostics == nil {
		return
	}
	Diagnostics.Log(context.Background(), slog.LevelDebug, "layered: "+msg, args...)
}

package chart

import (
	"log/slog"
	"sync/atomic"
)

var (
	discardLogger = slog.New(slog.DiscardHandler)

	// packageLogger is the logger installed by SetLogger; nil discards.
	packageLogger atomic.Pointer[slog.Logger]
)

// SetLogger installs the package-wide logger. LineRenderers created without
// WithLogger and the raster canvas log through it. Pass nil to discard
// output again, which is the default.
//
// Records emitted:
//   - [slog.LevelDebug]: per-series fill decisions (skipped empty paths,
//     filled vertex count and area, transparent fills)
//   - [slog.LevelWarn]: canvas failures while filling a series
//
// SetLogger may be called while charts are drawing.
//
// Example:
//
//	chart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	packageLogger.Store(l)
}

// Logger returns the package-wide logger. It never returns nil.
func Logger() *slog.Logger {
	if l := packageLogger.Load(); l != nil {
		return l
	}
	return discardLogger
}

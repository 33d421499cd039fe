package config

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"io"
)

// NewLogger builds the root logger: logfmt or JSON lines on w, stamped with
// UTC time and caller, filtered to the configured level.
func NewLogger(cfg Log, w io.Writer) log.Logger {
	w = log.NewSyncWriter(w)

	var logger log.Logger
	if cfg.Format == "json" {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}

	var option level.Option
	switch cfg.Level {
	case "debug":
		option = level.AllowDebug()
	case "warn":
		option = level.AllowWarn()
	case "error":
		option = level.AllowError()
	default:
		option = level.AllowInfo()
	}
	logger = level.NewFilter(logger, option)

	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

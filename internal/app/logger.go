package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/casedesk-backend/internal/config"
)

// redacted replaces the value of any attribute whose key names a credential.
const redacted = "[redacted]"

// NewLogger builds the process logger from cfg and installs it as the slog
// default. Output goes to stderr.
//
// Format "json" is for production; "text" adds source locations. Level is
// debug, info, warn or error and falls back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: scrubAttr,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// scrubAttr normalizes timestamps to UTC and blanks credentials that slip
// into log attributes, such as a staff password in a failed register input.
func scrubAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		return slog.Time(slog.TimeKey, a.Value.Time().UTC())
	}
	if isSecretKey(a.Key) && a.Value.Kind() != slog.KindGroup {
		return slog.String(a.Key, redacted)
	}
	return a
}

func isSecretKey(key string) bool {
	k := strings.ToLower(strings.ReplaceAll(key, "_", ""))
	switch k {
	case "password", "passwordhash", "authorization", "accesstoken", "refreshtoken", "token", "secret", "apikey":
		return true
	}
	return strings.HasSuffix(k, "secret") || strings.HasSuffix(k, "password")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

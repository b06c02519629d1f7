package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Options struct {
	Level  string // debug|info|warn|error (default info)
	Format string // text|json (default text)
	App    string // opcional, se agrega como campo "app"
}

// New construye el logger del proceso.
// Formato text usa ConsoleWriter (dev); json es para producción.
func New(opts Options) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if strings.ToLower(strings.TrimSpace(opts.Format)) != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if app := strings.TrimSpace(opts.App); app != "" {
		ctx = ctx.Str("app", app)
	}
	return ctx.Logger()
}

package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/inkpass/pkg/slogx"
)

type Globals struct {
	Debug   bool
	Version string

	// Out defaults to stdout.
	Out io.Writer
}

func (g *Globals) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Globals) logger() *slog.Logger {
	level := "warn"
	if g.Debug {
		level = "debug"
	}
	return slogx.New(slogx.Config{
		Service: "authctl",
		Version: g.Version,
		Level:   level,
		Format:  "text",
		Output:  os.Stderr,
	})
}

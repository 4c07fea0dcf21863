package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/aussiebroadwan/inkpass/cmd/authctl/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		HashPassword   commands.HashPasswordCmd   `cmd:"" help:"Hash a password for the users table"`
		VerifyPassword commands.VerifyPasswordCmd `cmd:"" help:"Check a password against a stored hash"`
		Revoke         commands.RevokeCmd         `cmd:"" help:"Revoke a user's active session"`
		GenKey         commands.GenKeyCmd         `cmd:"" help:"Generate token signing key material"`
		Debug          bool                       `help:"Enable debug mode."`
		Version        kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("authctl"),
		kong.Description("Operator tooling for the inkpass auth service."),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}

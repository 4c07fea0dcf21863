// Command auth serves login, logout and the current-user endpoint, and
// enforces one active session per user through the session registry.
package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/inkpass/internal/auth/app"
)

func main() {
	application, err := app.New(app.LoadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "auth: failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "auth: %v\n", err)
		os.Exit(1)
	}
}

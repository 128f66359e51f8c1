// Package main is the entry point for the fontls CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fontkit/fontls/cmd/fontls/commands"
	flserrors "github.com/fontkit/fontls/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *flserrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(flserrors.ExitUser)
	}
}

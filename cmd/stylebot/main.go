// Package main provides the stylebot CLI entrypoint.
package main

import (
	"os"

	"github.com/stylebot-ai/support-engine/cmd/stylebot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for todoctl, the session admin CLI.
package main

import (
	"context"
	"os"

	"github.com/jsamuelsen11/go-todo-lists/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

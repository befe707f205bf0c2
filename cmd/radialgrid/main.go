// SPDX-License-Identifier: MIT

// Command radialgrid validates radial distribution networks and answers
// downstream, reconnection and N-1 questions about them.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/radialgrid/cmd/radialgrid/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx)
	stop()
	os.Exit(code)
}

// termswap rewrites Simplified Chinese and regional terminology variants
// into the preferred Traditional Chinese terms.
package main

import (
	"context"
	"os"
	"os/signal"

	"termswap/cmd/termswap/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	os.Exit(cmd.ExitCode(err))
}

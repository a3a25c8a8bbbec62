// Command brachistochrone solves a discrete fastest-descent problem and
// prints or exports the resulting path.
//
//	brachistochrone solve --resolution 50 --format csv
//	brachistochrone solve --config scenario.yaml --format geojson -o path.json
//	brachistochrone horizon 400
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

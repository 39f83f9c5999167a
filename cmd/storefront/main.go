package main

import (
	"context"
	"fmt"
	"os"

	"atelier-storefront/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start:", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

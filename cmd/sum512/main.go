// Package main is the sum512 CLI entrypoint.
package main

import (
	"os"

	"sum512/internal/app"
)

func main() {
	application := app.New()
	os.Exit(application.Run(os.Args[1:]))
}

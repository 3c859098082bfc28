// Package main is the hashsum CLI entrypoint.
package main

import (
	"os"

	"hashsum/internal/app"
)

func main() {
	application := app.New()
	os.Exit(application.Run(os.Args[1:]))
}

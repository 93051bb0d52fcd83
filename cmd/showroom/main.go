// Showroom lists the cars of a showroom catalog in the terminal and lets you
// expand a car to flip through its detail photos.
//
// Usage:
//
//	showroom [command] [flags]
//
// Running without a command opens the interactive screen.
package main

import (
	"os"

	"github.com/Makepad-fr/showroom/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}

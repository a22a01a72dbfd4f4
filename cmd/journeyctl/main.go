// Package main is the entry point for journeyctl, the vault management tool.
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/aidanlsb/journey/internal/cli"
)

func main() {
	if err := cli.ExecuteCtl(); err != nil {
		os.Exit(1)
	}
}

// Package main runs the villa CLI.
package main

import (
	"os"

	"github.com/dotslashsimran/ai-love-island/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/roach88/gfxdiag/internal/cli"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

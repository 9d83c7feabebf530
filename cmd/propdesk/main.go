package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"propdesk/internal/cli"
)

// @title propdesk API
// @version 1.0
// @BasePath /
func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

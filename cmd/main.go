// Package main provides the CLI entry point for the flights tool
// This tool maintains a list of flights in a JSON file:
// 1. add - Append a flight
// 2. display - Print every flight
// 3. select - Print the flights matching a text
// plus CSV import, SQLite export and read-only SQL queries over the export.
package main

import (
	"fmt"
	"os"

	"flights/internal/commands"
	"flights/internal/config"
	"flights/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one invocation and returns the process exit code.
// Only usage errors produce a non-zero code.
func run(args []string) int {
	log, closeLog, err := logging.New(os.Stderr, config.LogFile)
	if err != nil {
		log.Errorf("logging to console only: %v", err)
	}
	defer closeLog()

	rootCmd := commands.NewRootCommand(log)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsage
	}
	return ExitSuccess
}

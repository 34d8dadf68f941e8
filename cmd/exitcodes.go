package main

// Exit codes. Data errors are logged and never change the exit code.
const (
	ExitSuccess = 0 // Command ran, including commands whose data errors were logged
	ExitUsage   = 2 // Missing or malformed command-line arguments
)

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dllm-bench/leaderboard/internal/leaderboard"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // Records regenerated (or nothing to do)
	ExitInputMissing = 1 // Input table not found; output left untouched
	ExitError        = 2 // Configuration, parse or I/O error
)

func main() {
	os.Exit(exitCode(execute()))
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(os.Stderr, "Error:", err)

	if errors.Is(err, leaderboard.ErrInputNotFound) {
		return ExitInputMissing
	}

	// All other errors are configuration/runtime errors
	return ExitError
}

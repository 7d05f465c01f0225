package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dllm-bench/leaderboard/internal/leaderboard"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "success",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "missing input",
			err:  leaderboard.ErrInputNotFound,
			want: ExitInputMissing,
		},
		{
			name: "wrapped missing input",
			err:  fmt.Errorf("convert: %w", leaderboard.ErrInputNotFound),
			want: ExitInputMissing,
		},
		{
			name: "regular error",
			err:  errors.New("config error"),
			want: ExitError,
		},
		{
			name: "malformed row",
			err:  &leaderboard.MalformedRowError{Line: 2, Column: "epw80", Err: errors.New("not a number")},
			want: ExitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

// Package main provides the entry point for the organizer CLI.
package main

import (
	"errors"
	"os"

	"github.com/jamesainslie/organizer/pkg/organizer/types"
)

func main() {
	if err := Execute(); err != nil {
		if errors.Is(err, types.ErrTargetMissing) || errors.Is(err, types.ErrNotDirectory) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/jamesainslie/organizer/pkg/organizer/config"
	"github.com/jamesainslie/organizer/pkg/organizer/movelog"
	"github.com/jamesainslie/organizer/pkg/organizer/planner"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <directory>",
	Short: "Show the move log of a previous run",
	Long: `Display the organizer.log left in a directory by the last apply run.

Each line records one move as "original -> destination". Undo is left
manual: the log gives you everything needed to move files back.`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

// runLog prints a previously written move log.
func runLog(cmd *cobra.Command, args []string) error {
	expandedPath, err := config.ExpandPath(args[0])
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}

	// Reuse the planner's target validation for consistent exit codes.
	p, err := planner.New(expandedPath)
	if err != nil {
		return err
	}

	lg, err := movelog.Read(p.Target())
	if err != nil {
		return err
	}

	if !getQuiet() && lg.Header != "" {
		fmt.Println(lg.Header)
	}
	for _, rec := range lg.Records {
		fmt.Printf("%s -> %s\n", rec.Source, rec.Dest)
	}
	if len(lg.Records) == 0 {
		printInfo("(no moves recorded)")
	}
	return nil
}

package main

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/jamesainslie/organizer/pkg/organizer/config"
	"github.com/jamesainslie/organizer/pkg/organizer/mover"
	"github.com/jamesainslie/organizer/pkg/organizer/movelog"
	"github.com/jamesainslie/organizer/pkg/organizer/output"
	"github.com/jamesainslie/organizer/pkg/organizer/planner"
	"github.com/jamesainslie/organizer/pkg/organizer/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runOrganize is the main organize command handler.
func runOrganize(cmd *cobra.Command, args []string) error {
	expandedPath, err := config.ExpandPath(args[0])
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}

	mode, err := resolveMode(cmd)
	if err != nil {
		return err
	}

	p, err := planner.New(expandedPath)
	if err != nil {
		return err
	}

	report, err := p.Plan(mode)
	if err != nil {
		return err
	}

	if mode == types.ModeApply {
		mover.Apply(report, func(move types.Move, moveErr error) {
			printError("failed to move %s: %v", filepath.Base(move.Source), moveErr)
		})

		// The log records intent: failed moves are written too.
		if err := movelog.Write(report); err != nil {
			printError("failed to write move log: %v", err)
		} else {
			printInfo("Log written to: %s", movelog.Path(report.Target))
		}
	}

	return render(report)
}

// resolveMode combines the mode flags with the configured default.
// An explicit --run/--apply wins over --dry/--preview; with no mode
// flag at all the config default applies, and apply is the fallback.
func resolveMode(cmd *cobra.Command) (types.Mode, error) {
	dry, _ := cmd.Flags().GetBool("dry")
	preview, _ := cmd.Flags().GetBool("preview")
	run, _ := cmd.Flags().GetBool("run")
	apply, _ := cmd.Flags().GetBool("apply")

	switch {
	case run || apply:
		return types.ModeApply, nil
	case dry || preview:
		return types.ModeDryRun, nil
	case viper.GetBool("dry_run"):
		return types.ModeDryRun, nil
	default:
		return types.ModeApply, nil
	}
}

// render prints the report in the requested output format.
func render(report *types.Report) error {
	if getQuiet() {
		return nil
	}

	name := viper.GetString("output")
	if name == "" {
		name = config.DefaultOutput
	}

	formatter, err := output.Get(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, report); err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}
	fmt.Print(buf.String())
	return nil
}

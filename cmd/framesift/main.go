// Package main provides the CLI entry point for framesift.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/five82/framesift"
)

const (
	appName    = "framesift"
	appVersion = "0.1.0"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName + " <video>",
		Short: "Extract video frames and prune near-duplicates",
		Long: `framesift samples one frame per second from a video with ffmpeg into
the frames/ directory, then deletes every frame that is a visual
near-duplicate of the previous retained frame.`,
		Version:       appVersion,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage help is only wanted for argument mistakes, not for
			// runtime failures.
			cmd.SilenceUsage = true
			return run(args[0])
		},
	}
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	return cmd
}

func run(inputPath string) error {
	sifter, err := framesift.New()
	if err != nil {
		return err
	}

	rep := framesift.NewTerminalReporter()

	result, err := sifter.Run(context.Background(), inputPath, rep)
	if err != nil {
		return err
	}

	rep.OperationComplete(fmt.Sprintf("%d unique frame(s) in %s", result.KeptFrames, result.FramesDir))
	return nil
}

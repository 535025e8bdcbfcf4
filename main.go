package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tapir-lang/tapir/cmd"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tapir [subcommand]",
	Short:        "tapir: a static type checker for dynamically typed code",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.DumpCmd)
}

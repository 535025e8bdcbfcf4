package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tapir-lang/tapir/frontend/types"
	"github.com/tapir-lang/tapir/internal/log"
	"github.com/tapir-lang/tapir/util"
)

// DumpCmd prints the builtin type universe. It exists as a debugging aid for
// working on the type algebra; the checker front door lives elsewhere.
var DumpCmd = &cobra.Command{
	Use:          "dump",
	Short:        "Dump the builtin type universe",
	RunE:         runDump,
	SilenceUsage: true,
}

var logLevel *int

func init() {
	logLevel = DumpCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runDump(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))
	logger := log.For("cmd")

	out := cmd.OutOrStdout()
	for _, class := range types.BuiltinClasses() {
		details := class.Details()
		mro := make([]string, len(details.MRO))
		for i, ancestor := range details.MRO {
			mro[i] = ancestor.String()
		}
		params := ""
		if len(details.TypeParameters) > 0 {
			params = "[" + util.JoinString(details.TypeParameters, ", ") + "]"
		}
		_, err := fmt.Fprintf(out, "%-10s %-24s mro=%s\n",
			details.Name+params, details.FullName, strings.Join(mro, " -> "))
		if err != nil {
			return err
		}
	}

	// a small demonstration of union normalization
	combined := types.CombineTypes([]types.Type{
		types.NewIntLiteral(1),
		types.NewIntLiteral(2),
		types.NewBoolLiteral(true),
		types.NewBoolLiteral(false),
	}, 0)
	logger.Debug("combined demo union", "result", combined.String())
	_, err := fmt.Fprintf(out, "\ncombine(Literal[1], Literal[2], Literal[True], Literal[False]) = %s\n", combined)
	return err
}

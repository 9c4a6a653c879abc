package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dart-cn/RePlugin/internal/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a serialized plugin record or plugin list",
	Long: `validate parses the given file as a plugin record (JSON object) or a
plugin list (JSON array) and exits non-zero if it is malformed or fails the
minimal-validity contract.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logger.New(logLevel, true)

	infos, err := readRecords(log, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d valid record(s)\n", args[0], len(infos))
	return nil
}

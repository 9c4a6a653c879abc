package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dart-cn/RePlugin/internal/logger"
	"github.com/dart-cn/RePlugin/pkg/hostpath"
	"github.com/dart-cn/RePlugin/pkg/plugin"
)

var inspectDataDir string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the fields of a serialized plugin record or plugin list",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectDataDir, "data-dir", "", "resolve artifact directories against this host data directory")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	log := logger.New(logLevel, true)
	out := cmd.OutOrStdout()

	var resolver *hostpath.Resolver
	if inspectDataDir != "" {
		resolver = hostpath.New(inspectDataDir)
	}

	infos, err := readRecords(log, args[0])
	if err != nil {
		return err
	}

	for n, info := range infos {
		if n > 0 {
			fmt.Fprintln(out)
		}
		printInfo(out, info, 0, resolver)
	}
	return nil
}

// printInfo prints one record, recursing into its pending chains.
func printInfo(out io.Writer, info *plugin.Info, depth int, resolver *hostpath.Resolver) {
	pad := strings.Repeat("  ", depth)

	fmt.Fprintf(out, "%sname:      %s\n", pad, info.Name())
	fmt.Fprintf(out, "%spackage:   %s\n", pad, info.PackageName())
	if info.Alias() != "" {
		fmt.Fprintf(out, "%salias:     %s\n", pad, info.Alias())
	}
	fmt.Fprintf(out, "%sversion:   %d (comparable %d)\n", pad, info.Version(), info.VersionValue())
	fmt.Fprintf(out, "%sprotocol:  %d..%d\n", pad, info.LowVersion(), info.HighVersion())
	fmt.Fprintf(out, "%stype:      %s (%d)\n", pad, info.Type(), int(info.Type()))
	fmt.Fprintf(out, "%spath:      %s\n", pad, info.Path())
	fmt.Fprintf(out, "%sused:      %t\n", pad, info.IsUsed())
	if fv := info.FrameworkVersion(); fv != plugin.FrameworkVersionUnknown {
		fmt.Fprintf(out, "%sframework: %d\n", pad, fv)
	}

	if resolver != nil {
		fmt.Fprintf(out, "%sapk dir:   %s\n", pad, resolver.ApkDir(info.Type()))
		fmt.Fprintf(out, "%sodex dir:  %s\n", pad, resolver.OdexDir(info.Type()))
		fmt.Fprintf(out, "%slibs dir:  %s\n", pad, resolver.NativeLibsDir(info.Type()))
	}

	if pu := info.PendingUpdate(); pu != nil {
		fmt.Fprintf(out, "%spending update:\n", pad)
		printInfo(out, pu, depth+1, resolver)
	}
	if pd := info.PendingDelete(); pd != nil {
		fmt.Fprintf(out, "%spending delete:\n", pad)
		printInfo(out, pd, depth+1, resolver)
	}
}

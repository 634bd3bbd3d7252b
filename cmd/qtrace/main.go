// Trace tree reconstruction for query-engine debug trace CSV dumps
// Rebuilds span nesting from the flat row log and exposes views, lookups,
// and exports over the result
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/andrewh/qtrace/pkg/tracecsv"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "qtrace",
		Short:        "Reconstruct trace trees from query-engine debug trace CSV dumps",
		SilenceUsage: true,
	}

	root.AddCommand(showCmd())
	root.AddCommand(spansCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(processorCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(versionCmd())

	return root
}

// loadTrace parses a trace dump from the given file, or stdin if args is
// empty.
func loadTrace(cmd *cobra.Command, args []string) (*tracecsv.TraceNode, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0]) //nolint:gosec // user-supplied file path is expected
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close() //nolint:errcheck // best-effort close on read-only file
		r = f
	}
	return tracecsv.ParseTrace(r)
}

func showCmd() *cobra.Command {
	var (
		messages bool
		attrs    bool
	)

	cmd := &cobra.Command{
		Use:   "show [trace.csv]",
		Short: "Print the reconstructed span tree",
		Long: "Print the reconstructed span tree.\n\n" +
			"Reads the trace CSV dump from a file or stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTrace(cmd, args)
			if err != nil {
				return err
			}
			renderTree(cmd.OutOrStdout(), root, renderOptions{messages: messages, attrs: attrs})
			return nil
		},
	}

	cmd.Flags().BoolVar(&messages, "messages", false, "include log messages under each span")
	cmd.Flags().BoolVar(&attrs, "attrs", false, "include extracted attributes under each span")

	return cmd
}

func spansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spans [trace.csv]",
		Short: "List all spans of the trace as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTrace(cmd, args)
			if err != nil {
				return err
			}
			renderSpanTable(cmd.OutOrStdout(), root)
			return nil
		},
	}
	return cmd
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [trace.csv]",
		Short: "Summarise span durations per operation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTrace(cmd, args)
			if err != nil {
				return err
			}
			renderStatsTable(cmd.OutOrStdout(), tracecsv.CollectStats(root))
			return nil
		},
	}
	return cmd
}

func processorCmd() *cobra.Command {
	var (
		spanID int
		procID int
	)

	cmd := &cobra.Command{
		Use:   "processor [trace.csv]",
		Short: "Translate between span IDs and processor IDs",
		Long: "Translate between span IDs and processor IDs.\n\n" +
			"With --span, prints the processor ID recorded on that span.\n" +
			"With --id, prints the first span handled by that processor.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spanSet := cmd.Flags().Changed("span")
			procSet := cmd.Flags().Changed("id")
			if spanSet == procSet {
				return fmt.Errorf("exactly one of --span or --id is required\n\nUsage: qtrace processor --span 3 trace.csv")
			}

			root, err := loadTrace(cmd, args)
			if err != nil {
				return err
			}

			if spanSet {
				proc, ok := tracecsv.ProcessorForSpan(root, spanID)
				if !ok {
					return fmt.Errorf("span %d not found or has no processor ID", spanID)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", proc)
				return nil
			}

			span, ok := tracecsv.SpanForProcessor(root, procID)
			if !ok {
				return fmt.Errorf("no span handled by processor %d", procID)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", span)
			return nil
		},
	}

	cmd.Flags().IntVar(&spanID, "span", 0, "span ID to look up")
	cmd.Flags().IntVar(&procID, "id", 0, "processor ID to look up")

	return cmd
}

func exportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [trace.csv]",
		Short: "Export the reconstructed tree as YAML or OTLP JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTrace(cmd, args)
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case "yaml":
				out, err = tracecsv.MarshalYAML(root)
			case "otlp":
				out, err = tracecsv.MarshalOTLP(root)
			default:
				return fmt.Errorf("unknown format %q, valid formats: yaml, otlp", format)
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml or otlp)")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "qtrace %s (commit: %s, built: %s)\n", version, commit, buildTime)
		},
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/joshuapare/arraykit/array"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <script>",
		Short: "Show transition statistics for a script",
		Long: `The stats command executes an operation script silently and reports
how the array moved between storage strategies: operation counts, every
transition taken with its frequency, and the final shape.

Example:
  arrayctl stats ops.txt
  arrayctl stats ops.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScriptStats(args[0])
		},
	}
	return cmd
}

type ScriptStats struct {
	ScriptPath string

	Operations int
	Writes     int
	Deletes    int
	Reads      int

	Transitions    int
	ByTransition   map[string]int
	KindsVisited   []string
	FinalKind      string
	FinalLength    int
	FinalIntegrity string
}

// statsTracer records every strategy transition for aggregation.
type statsTracer struct {
	pairs []string
	kinds map[array.Kind]bool
}

func (t *statsTracer) ArrayTransition(from, to array.Kind, index int, value array.Value) {
	t.pairs = append(t.pairs, fmt.Sprintf("%s -> %s", from, to))
	t.kinds[from] = true
	t.kinds[to] = true
}

func runScriptStats(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	ops, err := parseScript(f)
	if err != nil {
		return err
	}

	tracer := &statsTracer{kinds: make(map[array.Kind]bool)}
	opt := array.WithTracer(tracer)
	a := array.New(opt)
	tracer.kinds[a.Kind()] = true

	stats := ScriptStats{
		ScriptPath:   path,
		ByTransition: make(map[string]int),
	}
	for _, op := range ops {
		next, err := applyOp(a, op, io.Discard, opt)
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", op.line, op.name, err)
		}
		a = next
		tracer.kinds[a.Kind()] = true

		stats.Operations++
		switch op.name {
		case "set", "setlen", "rmrange", "addrange":
			stats.Writes++
		case "delete":
			stats.Deletes++
		case "get", "len", "dump":
			stats.Reads++
		}
	}

	stats.Transitions = len(tracer.pairs)
	for _, pair := range tracer.pairs {
		stats.ByTransition[pair]++
	}
	for kind := range tracer.kinds {
		stats.KindsVisited = append(stats.KindsVisited, kind.String())
	}
	sort.Strings(stats.KindsVisited)
	stats.FinalKind = a.Kind().String()
	stats.FinalLength = a.Length()
	stats.FinalIntegrity = a.IntegrityLevel().String()

	if jsonOut {
		return printJSON(stats)
	}

	p := message.NewPrinter(language.English)
	printInfo("\nScript Statistics: %s\n\n", path)
	printInfo("Operations:\n")
	printInfo("  Total: %s\n", p.Sprintf("%d", stats.Operations))
	printInfo("  Writes: %s\n", p.Sprintf("%d", stats.Writes))
	printInfo("  Deletes: %s\n", p.Sprintf("%d", stats.Deletes))
	printInfo("  Reads: %s\n\n", p.Sprintf("%d", stats.Reads))

	printInfo("Transitions: %s\n", p.Sprintf("%d", stats.Transitions))
	if len(stats.ByTransition) > 0 {
		pairs := make([]string, 0, len(stats.ByTransition))
		for pair := range stats.ByTransition {
			pairs = append(pairs, pair)
		}
		sort.Slice(pairs, func(i, j int) bool {
			if stats.ByTransition[pairs[i]] != stats.ByTransition[pairs[j]] {
				return stats.ByTransition[pairs[i]] > stats.ByTransition[pairs[j]]
			}
			return pairs[i] < pairs[j]
		})
		for _, pair := range pairs {
			printInfo("  %s: %s\n", pair, p.Sprintf("%d", stats.ByTransition[pair]))
		}
	}
	printInfo("\nKinds visited: %d\n", len(stats.KindsVisited))
	for _, kind := range stats.KindsVisited {
		printInfo("  %s\n", kind)
	}

	printInfo("\nFinal shape:\n")
	printInfo("  Kind: %s\n", stats.FinalKind)
	printInfo("  Length: %s\n", p.Sprintf("%d", stats.FinalLength))
	printInfo("  Integrity: %s\n", stats.FinalIntegrity)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/arraykit/array"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute an array operation script",
		Long: `The run command executes a line-oriented operation script against an
adaptive array and prints the results of its read operations. With
--verbose, every storage transition is reported as it happens.

Example:
  arrayctl run ops.txt
  arrayctl run ops.txt --verbose

Script syntax (one operation per line, '#' starts a comment):
  new ints 1,2,3      new doubles 1.5,2      new values 1,x,undefined
  new empty [n]       set <i> <value>        get <i>
  delete <i>          len                    setlen <n>
  rmrange <start> <end>                      addrange <offset> <size>
  preventext          seal                   freeze
  dump`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(args[0])
		},
	}
	return cmd
}

// transitionPrinter reports strategy transitions on the verbose channel.
type transitionPrinter struct{}

func (transitionPrinter) ArrayTransition(from, to array.Kind, index int, value array.Value) {
	printVerbose("transition: %s -> %s (index %d, value %s)\n", from, to, index, value)
}

func runScript(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	printVerbose("Parsing script: %s\n", path)
	ops, err := parseScript(f)
	if err != nil {
		return err
	}

	tracer := array.WithTracer(transitionPrinter{})
	a := array.New(tracer)
	for _, op := range ops {
		next, err := applyOp(a, op, os.Stdout, tracer)
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", op.line, op.name, err)
		}
		a = next
	}

	printInfo("final: kind=%s length=%d integrity=%s\n", a.Kind(), a.Length(), a.IntegrityLevel())
	return nil
}

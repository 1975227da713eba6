package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/arraykit/array"
)

// scriptOp is one parsed statement of an operation script.
type scriptOp struct {
	line int
	name string
	args []string
}

// opArity maps fixed-arity operations to their argument count. "new" is
// validated separately because its arity depends on the layout.
var opArity = map[string]int{
	"get":        1,
	"set":        2,
	"delete":     1,
	"len":        0,
	"setlen":     1,
	"rmrange":    2,
	"addrange":   2,
	"seal":       0,
	"freeze":     0,
	"preventext": 0,
	"dump":       0,
}

// parseScript reads a line-oriented operation script. Blank lines and lines
// starting with '#' are skipped. Parsing stops at the first malformed
// statement, reporting its line number.
func parseScript(r io.Reader) ([]scriptOp, error) {
	var ops []scriptOp
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		op := scriptOp{line: line, name: fields[0], args: fields[1:]}
		if err := checkOp(op); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ops, nil
}

func checkOp(op scriptOp) error {
	if want, ok := opArity[op.name]; ok {
		if len(op.args) != want {
			return fmt.Errorf("%s takes %d argument(s), got %d", op.name, want, len(op.args))
		}
		return nil
	}
	if op.name != "new" {
		return fmt.Errorf("unknown operation %q", op.name)
	}
	if len(op.args) == 0 {
		return fmt.Errorf("new takes a layout: ints, doubles, values, or empty")
	}
	switch op.args[0] {
	case "empty":
		if len(op.args) > 2 {
			return fmt.Errorf("new empty takes at most one length argument")
		}
	case "ints", "doubles", "values":
		if len(op.args) != 2 {
			return fmt.Errorf("new %s takes a comma-separated element list", op.args[0])
		}
	default:
		return fmt.Errorf("unknown layout %q", op.args[0])
	}
	return nil
}

// parseValue interprets a script value literal. Integer literals in int32
// range become int values, other numbers become doubles, the word
// "undefined" becomes the undefined value, and anything else is kept as an
// opaque object (its string form).
func parseValue(s string) array.Value {
	if s == "undefined" {
		return array.Undefined
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n >= math.MinInt32 && n <= math.MaxInt32 {
			return array.Int(int32(n))
		}
		return array.Double(float64(n))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return array.Double(f)
	}
	return array.Object(s)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return n, nil
}

// makeArray builds the array for a "new" statement.
func makeArray(op scriptOp, opts ...array.Option) (*array.Array, error) {
	switch op.args[0] {
	case "empty":
		if len(op.args) == 1 {
			return array.New(opts...), nil
		}
		n, err := parseInt(op.args[1])
		if err != nil {
			return nil, err
		}
		return array.NewWithLength(n, opts...), nil
	case "ints":
		parts := strings.Split(op.args[1], ",")
		xs := make([]int32, len(parts))
		for i, p := range parts {
			n, err := strconv.ParseInt(p, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("bad int literal %q", p)
			}
			xs[i] = int32(n)
		}
		return array.FromInts(xs, opts...), nil
	case "doubles":
		parts := strings.Split(op.args[1], ",")
		xs := make([]float64, len(parts))
		for i, p := range parts {
			f, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, fmt.Errorf("bad double literal %q", p)
			}
			xs[i] = f
		}
		return array.FromDoubles(xs, opts...), nil
	default: // values
		parts := strings.Split(op.args[1], ",")
		vs := make([]array.Value, len(parts))
		for i, p := range parts {
			vs[i] = parseValue(p)
		}
		return array.FromValues(vs, opts...), nil
	}
}

// applyOp executes a single statement against a. It returns the array to
// use for subsequent statements ("new" replaces it, everything else
// mutates in place). Read results are written to out; opts apply to any
// replacement array.
func applyOp(a *array.Array, op scriptOp, out io.Writer, opts ...array.Option) (*array.Array, error) {
	switch op.name {
	case "new":
		return makeArray(op, opts...)
	case "get":
		i, err := parseInt(op.args[0])
		if err != nil {
			return a, err
		}
		if a.Has(i) {
			fmt.Fprintf(out, "[%d] = %s\n", i, a.Get(i))
		} else {
			fmt.Fprintf(out, "[%d] = <hole>\n", i)
		}
	case "set":
		i, err := parseInt(op.args[0])
		if err != nil {
			return a, err
		}
		return a, a.Set(i, parseValue(op.args[1]))
	case "delete":
		i, err := parseInt(op.args[0])
		if err != nil {
			return a, err
		}
		return a, a.Delete(i)
	case "len":
		fmt.Fprintf(out, "length = %d\n", a.Length())
	case "setlen":
		n, err := parseInt(op.args[0])
		if err != nil {
			return a, err
		}
		return a, a.SetLength(n)
	case "rmrange":
		start, err := parseInt(op.args[0])
		if err != nil {
			return a, err
		}
		end, err := parseInt(op.args[1])
		if err != nil {
			return a, err
		}
		return a, a.RemoveRange(start, end)
	case "addrange":
		offset, err := parseInt(op.args[0])
		if err != nil {
			return a, err
		}
		size, err := parseInt(op.args[1])
		if err != nil {
			return a, err
		}
		return a, a.AddRange(offset, size)
	case "seal":
		a.Seal()
	case "freeze":
		a.Freeze()
	case "preventext":
		a.PreventExtensions()
	case "dump":
		dumpArray(a, out)
	}
	return a, nil
}

func dumpArray(a *array.Array, out io.Writer) {
	fmt.Fprintf(out, "kind=%s length=%d integrity=%s\n", a.Kind(), a.Length(), a.IntegrityLevel())
	for i := 0; i < a.Length(); i++ {
		if a.Has(i) {
			fmt.Fprintf(out, "  [%d] %s\n", i, a.Get(i))
		} else {
			fmt.Fprintf(out, "  [%d] <hole>\n", i)
		}
	}
}

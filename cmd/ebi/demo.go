package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"golang.org/x/term"

	"github.com/shabbyrobe/go-ebi"
)

const demoOperand = "0xf1245ab3341ff3461818881767676819ee"

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Read a number from stdin and combine it with a fixed value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}
}

func runDemo(cmd *cobra.Command, opts *options) error {
	s, ctx, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	a, err := ctx.IntFromString(demoOperand)
	if err != nil {
		return errs.Wrap(err)
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if isTerminal(in) {
		fmt.Fprint(out, "Please key in a big number: ")
	}
	tok, err := readToken(in)
	if err != nil {
		return errs.Wrap(err)
	}
	b, err := ctx.IntFromString(tok)
	if err != nil {
		return errs.Wrap(err)
	}

	fmt.Fprintf(out, "%s %s (%#x)\n", label("Your number is"), b, b)

	for _, op := range []struct {
		name string
		fn   func(x, y ebi.Int) (ebi.Int, error)
	}{
		{"a+b", ctx.Add},
		{"a-b", ctx.Sub},
		{"a*b", ctx.Mul},
		{"a/b", ctx.Quo},
		{"a%b", ctx.Mod},
	} {
		v, err := op.fn(a, b)
		if err != nil {
			return errs.Wrap(fmt.Errorf("%s: %w", op.name, err))
		}
		fmt.Fprintf(out, "%s %s\n", label("%s =", op.name), v)
	}

	limit := ebi.IntFromInt(s.count)
	fmt.Fprint(out, label("Counting from 0 to %d:", s.count-1))
	for i := (ebi.Int{}); i.LessThan(limit); {
		fmt.Fprintf(out, " %s", i)
		if i, err = ctx.Inc(i); err != nil {
			return errs.Wrap(err)
		}
	}
	fmt.Fprintln(out)
	return nil
}

// readToken returns the first whitespace-delimited word of r, or "" if there
// is none.
func readToken(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)
	scanner.Split(bufio.ScanWords)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", scanner.Err()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

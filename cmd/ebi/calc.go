package main

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/shabbyrobe/go-ebi"
)

func newCalcCmd(opts *options) *cobra.Command {
	var base int

	cmd := &cobra.Command{
		Use:   "calc <x> <op> <y>",
		Short: "Evaluate a single binary operation",
		Long: `Evaluate x op y and print the result. Operands may be decimal or
0x-prefixed hex. Supported operators: + - * / % mod pow << >> cmp

The shift operators take a bit count that must be a multiple of 4. Use "--"
before a negative first operand:

	ebi calc -- -7 mod 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ctx, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			if base != 10 && base != 16 {
				return errs.New("unsupported base %d (must be 10 or 16)", base)
			}

			x, err := ctx.IntFromString(args[0])
			if err != nil {
				return errs.Wrap(err)
			}
			y, err := ctx.IntFromString(args[2])
			if err != nil {
				return errs.Wrap(err)
			}

			if args[1] == "cmp" {
				fmt.Fprintln(cmd.OutOrStdout(), x.Cmp(y))
				return nil
			}

			v, err := calc(ctx, x, args[1], y)
			if err != nil {
				return errs.Wrap(err)
			}
			text, err := v.Text(base)
			if err != nil {
				return errs.Wrap(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().IntVar(&base, "base", 10, "output base (10|16)")
	return cmd
}

func calc(ctx *ebi.Context, x ebi.Int, op string, y ebi.Int) (ebi.Int, error) {
	switch op {
	case "+":
		return ctx.Add(x, y)
	case "-":
		return ctx.Sub(x, y)
	case "*":
		return ctx.Mul(x, y)
	case "/":
		return ctx.Quo(x, y)
	case "%":
		return ctx.Rem(x, y)
	case "mod":
		return ctx.Mod(x, y)
	case "pow", "<<", ">>":
		n, err := smallOperand(op, y)
		if err != nil {
			return ebi.Int{}, err
		}
		switch op {
		case "pow":
			return ctx.Pow(x, n)
		case "<<":
			return ctx.Lsh(x, n)
		default:
			return ctx.Rsh(x, n)
		}
	default:
		return ebi.Int{}, errs.New("unknown operator %q", op)
	}
}

// smallOperand converts the right-hand side of pow and the shifts to a uint.
func smallOperand(op string, y ebi.Int) (uint, error) {
	u, err := y.AsUint64()
	if err != nil {
		return 0, errs.Wrap(fmt.Errorf("%s: right operand must be a non-negative machine integer: %w", op, err))
	}
	n, err := safecast.Conv[uint](u)
	if err != nil {
		return 0, errs.Wrap(fmt.Errorf("%s: %w", op, err))
	}
	return n, nil
}

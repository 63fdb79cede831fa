package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"srpprim/internal/bignum"
	"srpprim/internal/log"
)

func arithCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arith",
		Short: "Integer arithmetic over hex operands",
		Long: "Integer arithmetic over signed hex operands.\n" +
			"Negative operands such as -FE are accepted directly or after `--`.",
	}
	ops := []struct {
		use, short string
		f          func(a, b *bignum.Int) (*bignum.Int, error)
	}{
		{"add A B", "Print A + B", func(a, b *bignum.Int) (*bignum.Int, error) { return a.Add(b), nil }},
		{"sub A B", "Print A - B", func(a, b *bignum.Int) (*bignum.Int, error) { return a.Sub(b), nil }},
		{"mul A B", "Print A * B", func(a, b *bignum.Int) (*bignum.Int, error) { return a.Mul(b), nil }},
		{"mod A M", "Print A mod M (M > 0)", (*bignum.Int).Mod},
	}
	for _, op := range ops {
		cmd.AddCommand(&cobra.Command{
			Use:   op.use,
			Short: op.short,
			Long:  op.short + ". Negative operands may also follow `--`.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				xs, err := parseHexArgs([]string{"first operand", "second operand"}, args)
				if err != nil {
					return err
				}
				z, err := op.f(xs[0], xs[1])
				if err != nil {
					return err
				}
				log.Debug("arith", "op", cmd.Name(), "bits", z.BitLen())
				fmt.Fprintln(cmd.OutOrStdout(), z.Hex())
				return nil
			},
		})
	}
	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"srpprim/internal/log"
)

func modExpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modexp BASE EXP MOD",
		Short: "Print BASE^EXP mod MOD",
		Long: "Print BASE^EXP mod MOD over hex integers. A negative BASE such as -2\n" +
			"is accepted directly or after `--`.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseHexArgs([]string{"base", "exponent", "modulus"}, args)
			if err != nil {
				return err
			}
			defer xs[1].Destroy()
			z, err := xs[0].ModExp(xs[1], xs[2])
			if err != nil {
				return err
			}
			log.Debug("modexp", "modulusBits", xs[2].BitLen(), "constantTime", xs[2].Big().Bit(0) == 1)
			fmt.Fprintln(cmd.OutOrStdout(), z.Hex())
			return nil
		},
	}
}

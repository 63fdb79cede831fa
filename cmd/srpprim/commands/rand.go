package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"srpprim/internal/app"
	"srpprim/internal/bignum"
)

func randCmd(root *rootOptions) *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print a random integer with exactly --bits bits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("bits") {
				bits = root.wire.RandBits
			}
			if bits < 1 || bits > app.MaxRandomBits {
				return fmt.Errorf("--bits %d out of range [1, %d]", bits, app.MaxRandomBits)
			}
			x, err := bignum.Rand(bits)
			if err != nil {
				return err
			}
			defer x.Destroy()
			fmt.Fprintln(cmd.OutOrStdout(), x.Hex())
			return nil
		},
	}
	cmd.Flags().IntVarP(&bits, "bits", "b", 0, "bit length (default from config)")
	return cmd
}

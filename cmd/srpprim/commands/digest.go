package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"srpprim/internal/digest"
	"srpprim/internal/log"
)

type digestOptions struct {
	algorithm string
	literal   bool
	split     int
}

func (o *digestOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.algorithm, "algorithm", "a", "", "digest algorithm (default from config)")
	fs.BoolVarP(&o.literal, "string", "s", false, "hash arguments as strings instead of file names")
	fs.IntVar(&o.split, "split", 32*1024, "feed input in chunks of this many bytes")
}

func digestCmd(root *rootOptions) *cobra.Command {
	opts := &digestOptions{}
	cmd := &cobra.Command{
		Use:   "digest [flags] (FILE|-|STRING)...",
		Short: "Print the digest of each input",
		Long: "Print the digest of each input as lowercase hex followed by its name.\n" +
			"`-` reads standard input. Algorithms: sha1, sha256, blake2b-256, blake3.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg := root.wire.Algorithm
			if opts.algorithm != "" {
				a, err := digest.ParseAlgorithm(opts.algorithm)
				if err != nil {
					return err
				}
				alg = a
			}
			if opts.split < 1 {
				return fmt.Errorf("--split must be positive, got %d", opts.split)
			}

			for _, arg := range args {
				sum, n, err := digestInput(cmd, alg, arg, opts)
				if err != nil {
					return err
				}
				log.Debug("digest computed", "algorithm", alg, "input", arg, "bytes", n)
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, arg)
			}
			return nil
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func digestInput(cmd *cobra.Command, alg digest.Algorithm, arg string, opts *digestOptions) (string, int64, error) {
	d, err := digest.NewAlgorithm(alg)
	if err != nil {
		return "", 0, err
	}
	defer d.Destroy()

	var r io.Reader
	switch {
	case opts.literal:
		r = strings.NewReader(arg)
	case arg == "-":
		r = cmd.InOrStdin()
	default:
		f, err := os.Open(arg)
		if err != nil {
			return "", 0, err
		}
		defer f.Close()
		r = f
	}

	// Hide WriterTo/ReaderFrom so the chunk size is honoured.
	n, err := io.CopyBuffer(struct{ io.Writer }{d}, struct{ io.Reader }{r}, make([]byte, opts.split))
	if err != nil {
		return "", n, fmt.Errorf("%s: %w", arg, err)
	}
	if err := d.Finalize(); err != nil {
		return "", n, err
	}
	sum, err := d.HexDigest()
	return sum, n, err
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"srpprim/internal/domain"
	"srpprim/internal/log"
	"srpprim/internal/selftest"
	"srpprim/internal/store"
)

func selftestCmd(root *rootOptions) *cobra.Command {
	var (
		vectorsPath string
		writePath   string
		rounds      int
	)
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run known-answer and property checks",
		Long: "Run the built-in known-answer vectors, any vectors from --vectors\n" +
			"(or the config's Vectors.Path), and the property checks.\n" +
			"--write saves the built-in vectors to a file and exits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if writePath != "" {
				v := selftest.Builtin()
				if err := store.NewVectorFileStore(writePath).SaveVectors(v); err != nil {
					return err
				}
				log.Info("vectors written", "path", writePath, "count", v.Len())
				return nil
			}
			if rounds < 1 {
				return fmt.Errorf("--rounds must be positive, got %d", rounds)
			}

			var vs domain.VectorStore = root.wire.Vectors
			if vectorsPath != "" {
				vs = store.NewVectorFileStore(vectorsPath)
			}
			vectors := selftest.Builtin()
			if vs != nil {
				extra, ok, err := vs.LoadVectors()
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("vector file not found")
				}
				vectors.Digests = append(vectors.Digests, extra.Digests...)
				vectors.ModExp = append(vectors.ModExp, extra.ModExp...)
				log.Debug("vectors loaded", "count", extra.Len())
			}

			report := selftest.Run(vectors, rounds)
			out := cmd.OutOrStdout()
			for _, res := range report.Results {
				if res.OK {
					fmt.Fprintf(out, "PASS  %s\n", res.Name)
				} else {
					fmt.Fprintf(out, "FAIL  %s: %s\n", res.Name, res.Detail)
					log.Warn("selftest check failed", "check", res.Name, "detail", res.Detail)
				}
			}
			failed := len(report.Failed())
			log.Info("selftest finished", "checks", len(report.Results), "failed", failed)
			if failed > 0 {
				log.Error("selftest failed", "checks", len(report.Results), "failed", failed)
				return fmt.Errorf("%d of %d checks failed", failed, len(report.Results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&vectorsPath, "vectors", "", "JSON vector file to check in addition to the built-in vectors")
	cmd.Flags().StringVar(&writePath, "write", "", "write the built-in vectors to this file")
	cmd.Flags().IntVar(&rounds, "rounds", 16, "random trials per property")
	return cmd
}

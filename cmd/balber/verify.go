package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/gencode/balbermsg/balbermsgutil"
)

func newVerifyCmd(a *app) *cobra.Command {
	var tablePath string

	cmd := &cobra.Command{
		Use:   "verify --table FILE",
		Short: "Compare a golden label table with the compiled registry",
		Long: `Verify reads a label table in the format printed by "balber labels" and
reports every type, name or label that differs from the compiled registry.
It exits non-zero when any difference is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(tablePath)
			if err != nil {
				return fmt.Errorf("read table: %w", err)
			}

			var golden labelTable
			if err := yaml.Unmarshal(data, &golden); err != nil {
				return fmt.Errorf("parse table %s: %w", tablePath, err)
			}

			registry := balbermsgutil.NameMappings()
			diffs := diffTables(golden, buildTable(registry))

			out := cmd.OutOrStdout()
			for _, d := range diffs {
				fmt.Fprintln(out, d)
			}
			if len(diffs) > 0 {
				a.logger.Warn("label table mismatch", zap.String("table", tablePath), zap.Int("differences", len(diffs)))
				return fmt.Errorf("%d difference(s) between %s and the registry", len(diffs), tablePath)
			}

			fmt.Fprintf(out, "ok %s\n", registry.Fingerprint())
			return nil
		},
	}

	cmd.Flags().StringVar(&tablePath, "table", "", "golden label table (YAML)")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}

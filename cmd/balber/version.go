package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/gencode/balbermsg/balbermsgutil"
)

func newVersionCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the generator version and registry fingerprint",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			registry := balbermsgutil.NameMappings()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "generator:   %s\n", balbermsgutil.CodeGeneratorVersion)
			fmt.Fprintf(out, "fingerprint: %s\n", registry.Fingerprint())
			fmt.Fprintf(out, "types:       %d\n", registry.Len())
		},
	}
}

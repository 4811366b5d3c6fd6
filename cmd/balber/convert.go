package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/gencode"
)

func newConvertCmd(a *app) *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "convert --type TYPE [file]",
		Short: "Decode a document as a balbermsg type and re-encode it",
		Long: `Decode reads a document (from file, or stdin when no file or "-" is
given) in the --from format, validates it against the name mappings of
--type, and writes it to stdout in the --to format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, ok := converters[typ]
			if !ok {
				return fmt.Errorf("unknown type %q (known: %s)", typ, strings.Join(sortedKeys(converters), ", "))
			}

			fromFormat := a.cfg.GetString(cfgKeyFrom)
			toFormat := a.cfg.GetString(cfgKeyTo)

			from, err := codecFor(fromFormat)
			if err != nil {
				return err
			}
			to, err := codecFor(toFormat)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var opts []gencode.DecodeOption
			if a.cfg.GetBool(cfgKeySkipUnknown) {
				opts = append(opts, gencode.SkipUnknownFields())
			}

			a.logger.Debug("converting",
				zap.String("type", typ),
				zap.String("from", from.ContentType()),
				zap.String("to", to.ContentType()),
				zap.Int("size", len(data)),
			)

			out, err := conv(cmd.Context(), from, to, data, opts...)
			if err != nil {
				a.logger.Warn("conversion failed", zap.String("type", typ), zap.Error(err))
				return fmt.Errorf("convert %s: %w", typ, err)
			}

			if textual(toFormat) {
				out = append(out, '\n')
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", "balbermsg type name, e.g. BerEncoderOptions")
	cmd.Flags().String("from", defaultFormat, "input format: json, pretty, yaml, msgpack or bson")
	cmd.Flags().String("to", defaultFormat, "output format: json, pretty, yaml, msgpack or bson")
	cmd.Flags().Bool("skip-unknown", false, "ignore document keys that map to no field")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

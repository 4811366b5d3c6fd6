package main

import (
	"fmt"
	"io"
	"reflect"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/gencode"
	"github.com/zoobzio/gencode/balbermsg/balbermsgutil"
)

// labelTable is the YAML form of a registry: one entry per type, names in
// declaration order.
type labelTable []tableEntry

type tableEntry struct {
	Type  string     `yaml:"type"`
	Kind  string     `yaml:"kind"`
	Names []namePair `yaml:"names"`
}

type namePair struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
}

func newLabelsCmd(_ *app) *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Print the wire label table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := buildTable(balbermsgutil.NameMappings())
			if typ != "" {
				table = lo.Filter(table, func(e tableEntry, _ int) bool {
					return e.Type == typ
				})
				if len(table) == 0 {
					return fmt.Errorf("unknown type %q", typ)
				}
			}
			return writeTable(cmd.OutOrStdout(), table)
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", "print only this type")
	return cmd
}

// buildTable renders every entry of r, types sorted by name.
func buildTable(r *gencode.Registry) labelTable {
	return lo.FilterMap(r.Types(), func(rt reflect.Type, _ int) (tableEntry, bool) {
		e, err := r.Entry(rt)
		if err != nil {
			return tableEntry{}, false
		}
		return tableEntry{
			Type: rt.Name(),
			Kind: e.Kind().String(),
			Names: lo.Map(e.Mapping().Pairs(), func(p gencode.Pair, _ int) namePair {
				return namePair{Name: p.Internal, Label: p.External}
			}),
		}, true
	})
}

func writeTable(w io.Writer, table labelTable) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(table); err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	return enc.Close()
}

// diffTables lists every difference between a golden table and the
// registry's table. An empty result means they match.
func diffTables(want, got labelTable) []string {
	byType := func(e tableEntry) string { return e.Type }
	wantBy := lo.KeyBy(want, byType)
	gotBy := lo.KeyBy(got, byType)

	missing, extra := lo.Difference(lo.Keys(wantBy), lo.Keys(gotBy))
	slices.Sort(missing)
	slices.Sort(extra)

	var diffs []string
	for _, t := range missing {
		diffs = append(diffs, fmt.Sprintf("%s: missing from registry", t))
	}
	for _, t := range extra {
		diffs = append(diffs, fmt.Sprintf("%s: not in table", t))
	}

	common := lo.Filter(lo.Keys(wantBy), func(t string, _ int) bool {
		_, ok := gotBy[t]
		return ok
	})
	slices.Sort(common)
	for _, t := range common {
		diffs = append(diffs, diffEntry(wantBy[t], gotBy[t])...)
	}
	return diffs
}

func diffEntry(want, got tableEntry) []string {
	var diffs []string
	if want.Kind != got.Kind {
		diffs = append(diffs, fmt.Sprintf("%s: kind %s, registry has %s", want.Type, want.Kind, got.Kind))
	}

	toMap := func(p namePair) (string, string) { return p.Name, p.Label }
	wantLabels := lo.SliceToMap(want.Names, toMap)
	gotLabels := lo.SliceToMap(got.Names, toMap)

	for _, p := range want.Names {
		label, ok := gotLabels[p.Name]
		switch {
		case !ok:
			diffs = append(diffs, fmt.Sprintf("%s.%s: missing from registry", want.Type, p.Name))
		case label != p.Label:
			diffs = append(diffs, fmt.Sprintf("%s.%s: label %q, registry has %q", want.Type, p.Name, p.Label, label))
		}
	}
	for _, p := range got.Names {
		if _, ok := wantLabels[p.Name]; !ok {
			diffs = append(diffs, fmt.Sprintf("%s.%s: not in table", got.Type, p.Name))
		}
	}

	// Shared labels resolve to the first declared name, so order is part of
	// the table.
	if len(diffs) == 0 && !slices.Equal(want.Names, got.Names) {
		diffs = append(diffs, fmt.Sprintf("%s: names declared in a different order", want.Type))
	}
	return diffs
}

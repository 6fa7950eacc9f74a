package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"declname/internal/names"
	"declname/internal/observ"
)

// dumpRow is one produced name with its properties.
type dumpRow struct {
	File                   string `json:"file" msgpack:"file"`
	Label                  string `json:"label,omitempty" msgpack:"label,omitempty"`
	Kind                   string `json:"kind" msgpack:"kind"`
	Name                   string `json:"name" msgpack:"name"`
	Canonical              bool   `json:"canonical" msgpack:"canonical"`
	CanonicalName          string `json:"canonical_name,omitempty" msgpack:"canonical_name,omitempty"`
	Dependent              bool   `json:"dependent" msgpack:"dependent"`
	InstantiationDependent bool   `json:"instantiation_dependent" msgpack:"instantiation_dependent"`
	UnexpandedPack         bool   `json:"unexpanded_pack" msgpack:"unexpanded_pack"`
	Loc                    string `json:"loc" msgpack:"loc"`
	End                    string `json:"end" msgpack:"end"`
}

// dumpFile groups the rows of one file with its table statistics.
type dumpFile struct {
	File    string         `json:"file" msgpack:"file"`
	Rows    []dumpRow      `json:"rows" msgpack:"rows"`
	Stats   names.Stats    `json:"stats" msgpack:"stats"`
	Timings *observ.Report `json:"timings,omitempty" msgpack:"timings,omitempty"`
}

func newDumpCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump <file>...",
		Short: "Show kind, canonical form and dependence of every name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			results, err := a.evalFiles(cmd.Context(), "dump", args)
			if err != nil {
				return err
			}
			defer closeAll(results)

			files := a.dumpFiles(results)
			out := cmd.OutOrStdout()
			switch format {
			case "text":
				err = writeDumpTable(out, files, a.color)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				err = enc.Encode(files)
			case "msgpack":
				err = msgpack.NewEncoder(out).Encode(files)
			default:
				return fmt.Errorf("unsupported format %q (must be text, json or msgpack)", format)
			}
			if err != nil {
				return err
			}
			return a.finish(cmd.ErrOrStderr(), results)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json|msgpack)")
	return cmd
}

func (a *app) dumpFiles(results []*fileResult) []dumpFile {
	pol := a.cfg.Policy()
	files := make([]dumpFile, 0, len(results))
	for _, fr := range results {
		df := dumpFile{File: fr.path, Stats: fr.ctx.Names.Stats()}
		if a.timings {
			report := fr.timer.Report()
			df.Timings = &report
		}
		for _, e := range fr.res.Entries {
			n := e.Info.Name
			row := dumpRow{
				File:                   fr.path,
				Label:                  e.Label,
				Kind:                   n.Kind().String(),
				Name:                   n.Format(pol),
				Canonical:              n.IsCanonical(),
				Dependent:              n.IsDependentName(),
				InstantiationDependent: e.Info.IsInstantiationDependent(),
				UnexpandedPack:         e.Info.ContainsUnexpandedParameterPack(),
				Loc:                    position(fr.ctx.Files, e.Info.Loc),
				End:                    position(fr.ctx.Files, e.Info.EndLoc()),
			}
			if !row.Canonical {
				row.CanonicalName = n.CanonicalForm().Format(pol)
			}
			df.Rows = append(df.Rows, row)
		}
		files = append(files, df)
	}
	return files
}

var dumpColumns = []string{"LABEL", "KIND", "NAME", "CANON", "DEP", "PACK", "LOC"}

func writeDumpTable(w io.Writer, files []dumpFile, colored bool) error {
	headerStyle := lipgloss.NewStyle().Bold(true)
	fileStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	yesStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	render := func(st lipgloss.Style, s string) string {
		if !colored {
			return s
		}
		return st.Render(s)
	}
	flag := func(b bool) string {
		if b {
			return "yes"
		}
		return "-"
	}

	var sb strings.Builder
	for i, f := range files {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(render(fileStyle, f.File))
		sb.WriteByte('\n')

		cells := make([][]string, 0, len(f.Rows)+1)
		cells = append(cells, dumpColumns)
		for _, r := range f.Rows {
			canon := flag(r.Canonical)
			if !r.Canonical {
				canon = "-> " + r.CanonicalName
			}
			cells = append(cells, []string{
				r.Label, r.Kind, r.Name, canon,
				flag(r.Dependent), flag(r.UnexpandedPack), r.Loc + "-" + r.End,
			})
		}
		widths := make([]int, len(dumpColumns))
		for _, row := range cells {
			for c, cell := range row {
				widths[c] = max(widths[c], runewidth.StringWidth(cell))
			}
		}
		for ri, row := range cells {
			for c, cell := range row {
				padded := cell
				if c < len(row)-1 {
					padded = runewidth.FillRight(cell, widths[c]+2)
				}
				switch {
				case ri == 0:
					padded = render(headerStyle, padded)
				case cell == "yes":
					padded = render(yesStyle, padded)
				}
				sb.WriteString(padded)
			}
			sb.WriteByte('\n')
		}
		s := f.Stats
		fmt.Fprintf(&sb, "records: special=%d literal=%d templated=%d subst=%d subst-pack=%d\n",
			s.Special, s.Literal, s.Templated, s.Subst, s.SubstPack)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

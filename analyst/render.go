/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package analyst

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"
)

// Format selects how a Review is written.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatMarkdown, FormatJSON, FormatYAML}

// Write renders the review to w in format.
func (r *Review) Write(w io.Writer, format Format) error {
	switch format {
	case FormatMarkdown:
		return r.Markdown(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Markdown writes the summary, a ratings table, and a concerns table per
// package that has concerns.
func (r *Review) Markdown(w io.Writer) error {
	title := "Repository review"
	if r.Repository != "" {
		title = "Review of " + r.Repository
	}
	if _, err := fmt.Fprintf(w, "# %s\n\n%s\n\n## Packages\n\n", title, strings.TrimSpace(r.Summary)); err != nil {
		return err
	}

	ratings := markdownTable(w, []string{"Package", "Path", "Manager", "Rating", "Concerns"})
	for _, p := range r.Packages {
		if err := ratings.Append([]string{
			cell(p.Name), cell(p.Path), cell(p.Manager),
			strconv.Itoa(p.Rating) + "/10", strconv.Itoa(len(p.Concerns)),
		}); err != nil {
			return err
		}
	}
	if err := ratings.Render(); err != nil {
		return err
	}

	for _, p := range r.Packages {
		if len(p.Concerns) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n### %s (%d/10)\n\n", p.Name, p.Rating); err != nil {
			return err
		}
		concerns := markdownTable(w, []string{"Category", "Complaint", "Proof"})
		for _, c := range p.Concerns {
			if err := concerns.Append([]string{cell(string(c.Category)), cell(c.Complaint), cell(c.Proof)}); err != nil {
				return err
			}
		}
		if err := concerns.Render(); err != nil {
			return err
		}
	}
	return nil
}

func markdownTable(w io.Writer, headers []string) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.On},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{Left: tw.On, Top: tw.Off, Right: tw.On, Bottom: tw.Off},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// cell keeps model-written text from breaking the table layout.
func cell(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "|", `\|`)), " ")
}

// Package report turns analysis results into tables and renders them as a
// pterm console table, JSON or YAML. Analysis packages never print; the
// command layer hands their return values to the builders here.
package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format; "" selects FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// Table is one titled result. Header and Rows feed the console renderer;
// Data carries the typed result for JSON and YAML.
type Table struct {
	Title  string     `json:"title" yaml:"title"`
	Header []string   `json:"-" yaml:"-"`
	Rows   [][]string `json:"-" yaml:"-"`
	Data   any        `json:"data" yaml:"data"`
}

// Render writes t to w in format f.
func Render(w io.Writer, f Format, t Table) error {
	switch f {
	case FormatTable, "":
		return renderTable(w, t)
	case FormatJSON:
		return encodeJSON(w, t)
	case FormatYAML:
		return encodeYAML(w, t)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
}

// RenderAll writes several tables: one after another for the console, a
// JSON array, or a YAML document stream.
func RenderAll(w io.Writer, f Format, tables []Table) error {
	switch f {
	case FormatTable, "":
		for _, t := range tables {
			if err := renderTable(w, t); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		return encodeJSON(w, tables)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, t := range tables {
			if err := enc.Encode(t); err != nil {
				return errors.Wrap(err, "report: encode yaml")
			}
		}
		return errors.Wrap(enc.Close(), "report: encode yaml")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
}

func renderTable(w io.Writer, t Table) error {
	var b strings.Builder
	if t.Title != "" {
		b.WriteString(pterm.LightCyan(t.Title))
		b.WriteString("\n")
	}
	if len(t.Rows) == 0 {
		b.WriteString(pterm.Gray("(no results)"))
		b.WriteString("\n\n")
		_, err := io.WriteString(w, b.String())
		return errors.Wrap(err, "report: write")
	}

	data := make(pterm.TableData, 0, len(t.Rows)+1)
	data = append(data, t.Header)
	data = append(data, t.Rows...)
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "report: render table")
	}
	b.WriteString(s)
	b.WriteString("\n\n")

	_, err = io.WriteString(w, b.String())
	return errors.Wrap(err, "report: write")
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "report: encode json")
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "report: encode yaml")
	}
	return errors.Wrap(enc.Close(), "report: encode yaml")
}

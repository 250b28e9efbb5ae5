package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/meigma/flexpath"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// result is one processed input. Error is set instead of Path when the input
// could not be processed.
type result struct {
	Input    string   `json:"input" yaml:"input"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
	Source   string   `json:"source,omitempty" yaml:"source,omitempty"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Info     *details `json:"info,omitempty" yaml:"info,omitempty"`
	detailed bool
}

// details describes a path for the info command.
type details struct {
	Variant   string   `json:"variant" yaml:"variant"`
	Absolute  bool     `json:"absolute" yaml:"absolute"`
	Segments  []string `json:"segments" yaml:"segments"`
	Base      string   `json:"base" yaml:"base"`
	Extension string   `json:"extension,omitempty" yaml:"extension,omitempty"`
}

func pathResult(input string, p flexpath.FlexPath) result {
	return result{Input: input, Path: p.String()}
}

func errorResult(input string, err error) result {
	return result{Input: input, Error: err.Error()}
}

func validateOutput(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeResults(w io.Writer, format string, results []result) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, results)
	}
}

func writeText(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for i, r := range results {
		switch {
		case r.Error != "":
			fmt.Fprintf(tw, "error: %s\n", r.Error)
		case r.detailed && r.Info != nil:
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "path:\t%s\n", r.Path)
			fmt.Fprintf(tw, "variant:\t%s\n", r.Info.Variant)
			fmt.Fprintf(tw, "absolute:\t%t\n", r.Info.Absolute)
			fmt.Fprintf(tw, "segments:\t%s\n", strings.Join(r.Info.Segments, ", "))
			fmt.Fprintf(tw, "base:\t%s\n", r.Info.Base)
			if r.Info.Extension != "" {
				fmt.Fprintf(tw, "extension:\t%s\n", r.Info.Extension)
			}
		default:
			fmt.Fprintln(tw, r.Path)
		}
	}
	return tw.Flush()
}

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/fontkit/fontls/internal/font"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// recordsDoc wraps records so every machine format has a named top-level
// key (TOML cannot encode a bare top-level array).
type recordsDoc struct {
	Fonts []font.Record `json:"fonts" yaml:"fonts" toml:"fonts"`
}

// encodeRecords writes records in the given machine-readable format.
func encodeRecords(w io.Writer, format string, records []font.Record) error {
	doc := recordsDoc{Fonts: records}
	if doc.Fonts == nil {
		doc.Fonts = []font.Record{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "encoding output")
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return errors.Wrap(enc.Encode(doc), "encoding output")
	case "toml":
		return errors.Wrap(toml.NewEncoder(w).Encode(doc), "encoding output")
	default:
		return errors.Newf("unsupported format: %s", format)
	}
}

// outputListTabular writes records in tabular format grouped by scope.
func outputListTabular(w io.Writer, records []font.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No fonts found")
		return nil
	}

	// Records arrive ordered by scope, so group boundaries are simple.
	var scope string
	var tw *tabwriter.Writer

	flush := func() {
		if tw != nil {
			tw.Flush()
		}
	}

	for _, r := range records {
		if r.Scope != scope {
			flush()
			if scope != "" {
				fmt.Fprintln(w)
			}
			scope = r.Scope
			fmt.Fprintf(w, "%sScope: %s%s\n", colorCyan+colorBold, scope, colorReset)
			tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "  %sNAME%s\t%sPATH%s\n", colorBold, colorReset, colorBold, colorReset)
		}
		fmt.Fprintf(tw, "  %s%s%s\t%s%s%s\n", colorGreen, r.Name, colorReset, colorGray, r.Path, colorReset)
	}
	flush()

	return nil
}

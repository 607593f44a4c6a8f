// Package render writes holiday results for the command line.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/frholidays/internal/domain/models"
)

// Format selects an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	case "":
		return Text, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

// Years writes the holidays of one or more years.
func Years(w io.Writer, f Format, years []models.YearHolidays) error {
	switch f {
	case JSON:
		return writeJSON(w, years)
	case YAML:
		return writeYAML(w, years)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, y := range years {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "# %d (%d holidays)\n", y.Year, len(y.Holidays))
		for _, h := range y.Holidays {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", h.Date, h.Name, h.FrenchName)
		}
	}
	return tw.Flush()
}

// Check writes the answer to a membership query.
func Check(w io.Writer, f Format, c models.Check) error {
	switch f {
	case JSON:
		return writeJSON(w, c)
	case YAML:
		return writeYAML(w, c)
	}
	if !c.IsHoliday {
		_, err := fmt.Fprintf(w, "%s is not a bank holiday\n", c.Date)
		return err
	}
	_, err := fmt.Fprintf(w, "%s is a bank holiday: %s (%s)\n", c.Date, c.Holiday.Name, c.Holiday.FrenchName)
	return err
}

// Dates writes a plain list of YYYY-MM-DD values.
func Dates(w io.Writer, f Format, ds []string) error {
	switch f {
	case JSON:
		return writeJSON(w, ds)
	case YAML:
		return writeYAML(w, ds)
	}
	for _, d := range ds {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	return nil
}

// Shift writes the result of moving n business days.
func Shift(w io.Writer, f Format, s models.BusinessShift) error {
	switch f {
	case JSON:
		return writeJSON(w, s)
	case YAML:
		return writeYAML(w, s)
	}
	if _, err := fmt.Fprintf(w, "%s %+d business days = %s\n", s.From, s.N, s.Date); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range s.Skipped {
		fmt.Fprintf(tw, "skipped\t%s\t%s\n", c.Date, c.Name)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

package launch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ErrUnsupportedFormat indicates an export format other than json or csv.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// csvHeader is the fixed CSV column order.
var csvHeader = []string{"id", "name", "date_utc", "rocket", "success", "launchpad"}

// Export serializes launch views to w. "json" produces an array of launch
// records; "csv" produces one quoted row per launch under a fixed header.
func Export(w io.Writer, views []View, format string) error {
	switch format {
	case FormatJSON:
		return exportJSON(w, views)
	case FormatCSV:
		return exportCSV(w, views)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func exportJSON(w io.Writer, views []View) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(views); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

func exportCSV(w io.Writer, views []View) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, v := range views {
		success := ""
		if v.Success != nil {
			if *v.Success {
				success = "true"
			} else {
				success = "false"
			}
		}
		row := []string{
			v.ID,
			v.Name,
			v.DateUTC.UTC().Format(time.RFC3339),
			v.RocketName,
			success,
			v.LaunchpadName,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/pendplot/internal/compare"
	"github.com/san-kum/pendplot/internal/trajectory"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

type ExportData struct {
	Reference string       `json:"reference"`
	Series    []SeriesData `json:"series"`
}

type SeriesData struct {
	Method   string          `json:"method"`
	Samples  int             `json:"samples"`
	Times    []float64       `json:"times"`
	Theta    []float64       `json:"eps_theta"`
	ThetaDot []float64       `json:"eps_theta_dot"`
	Summary  compare.Summary `json:"summary"`
}

// WriteCSV writes one row per sample and method: t,method,eps_theta,eps_theta_dot.
func WriteCSV(w io.Writer, series []*compare.Series) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"t", "method", "eps_theta", "eps_theta_dot"}); err != nil {
		return err
	}
	for _, s := range series {
		for i := range s.T {
			row := []string{
				formatFloat(s.T[i]),
				s.Method.String(),
				formatFloat(s.Theta[i]),
				formatFloat(s.ThetaDot[i]),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, reference trajectory.Method, series []*compare.Series) error {
	data := ExportData{
		Reference: reference.String(),
		Series:    make([]SeriesData, len(series)),
	}
	for i, s := range series {
		data.Series[i] = SeriesData{
			Method:   s.Method.String(),
			Samples:  s.Len(),
			Times:    s.T,
			Theta:    s.Theta,
			ThetaDot: s.ThetaDot,
			Summary:  compare.Summarize(s),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Write dispatches on format.
func Write(w io.Writer, format string, reference trajectory.Method, series []*compare.Series) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, series)
	case FormatJSON:
		return WriteJSON(w, reference, series)
	default:
		return unknownFormat(format)
	}
}

func unknownFormat(format string) error {
	return fmt.Errorf("unknown export format: %s (available: csv, json)", format)
}

// ExportFile writes to path, creating parent directories.
func ExportFile(path, format string, reference trajectory.Method, series []*compare.Series) error {
	if format != FormatCSV && format != FormatJSON {
		return unknownFormat(format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, format, reference, series); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

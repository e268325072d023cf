package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/KangHyoeun/maneuver.report/internal/maneuver"
)

// CSVWriter wraps csv.Writer with methods for trajectory output.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a CSVWriter over the given writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the trajectory column header.
func (c *CSVWriter) WriteHeader() {
	c.w.Write([]string{"t", "x", "y", "psi", "u", "r"})
}

// WriteSamples writes one row per trajectory sample.
func (c *CSVWriter) WriteSamples(tr maneuver.Trajectory) {
	for _, s := range tr {
		c.w.Write([]string{
			fmt.Sprintf("%.6f", s.T),
			fmt.Sprintf("%.6f", s.X),
			fmt.Sprintf("%.6f", s.Y),
			fmt.Sprintf("%.6f", s.Psi),
			fmt.Sprintf("%.6f", s.U),
			fmt.Sprintf("%.6f", s.R),
		})
	}
}

// Flush flushes buffered rows and reports any write error seen so far.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

// WriteTrajectoryCSV dumps a trajectory to a CSV file at path.
func WriteTrajectoryCSV(path string, tr maneuver.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}

	cw := NewCSVWriter(f)
	cw.WriteHeader()
	cw.WriteSamples(tr)
	if err := cw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return f.Close()
}

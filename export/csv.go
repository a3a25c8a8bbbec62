package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader names the columns written by WriteCSV.
var csvHeader = []string{"x", "y", "time_to_go"}

// WriteCSV writes one "x,y,time_to_go" row per step in grid units, after a
// header row. The goal is not a step and is not written.
func WriteCSV(w io.Writer, r Route) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: csv header: %w", err)
	}
	row := make([]string, len(csvHeader))
	for _, st := range r.Steps {
		row[0] = strconv.Itoa(st.Pos.X)
		row[1] = strconv.Itoa(st.Pos.Y)
		row[2] = strconv.FormatFloat(st.TimeToGo, 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: csv stage %d: %w", st.Stage, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

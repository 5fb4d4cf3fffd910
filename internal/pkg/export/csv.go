package export

import (
	"fmt"
	"io"

	"github.com/brown009872/payroll-app/internal/domain/attendance"
	"github.com/gocarina/gocsv"
)

// AttendanceCSV writes attendance rows with a header line.
func AttendanceCSV(w io.Writer, rows []attendance.ExportRow) error {
	if rows == nil {
		rows = []attendance.ExportRow{}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write attendance csv: %w", err)
	}
	return nil
}

package admin

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yadvendra249/olio-cab-connect/internal/booking/domain"
)

const exportSheet = "Bookings"

var exportHeaders = []string{
	"Booking", "Type", "Category", "Pickup", "Drop",
	"Service Date", "Status", "Customer", "Mobile", "Fare", "Created",
}

// ExportXLSX writes the filtered booking list to an Excel report under dir
// and returns the file path.
func (w *Workflow) ExportXLSX(dir string, filter domain.Filter) (string, error) {
	if err := w.authorize("ExportXLSX"); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %w", err)
	}

	bookings := w.store.List(filter)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return "", err
	}

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(exportSheet, cell, header)
		f.SetCellStyle(exportSheet, cell, cell, headerStyle)
	}

	for row, b := range bookings {
		values := []interface{}{
			b.Number,
			string(b.Type),
			string(b.Category),
			b.PickupLocation,
			b.DropLocation,
			b.Date.Format("02.01.2006 15:04"),
			string(b.Status),
			b.CustomerName,
			b.CustomerMobile,
			b.FareEstimate.StringFixed(2),
			b.CreatedAt.Format("02.01.2006 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	filename := filepath.Join(dir,
		fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02_150405")))
	if err := f.SaveAs(filename); err != nil {
		return "", fmt.Errorf("error saving export: %w", err)
	}

	w.logger.OK("AdminWorkflow.ExportXLSX", fmt.Sprintf("exported %d bookings to %s", len(bookings), filename))
	return filename, nil
}

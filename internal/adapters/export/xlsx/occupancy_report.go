package xlsx

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/hotel_management_app/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the occupancy report.
const SheetName = "Rooms"

// Headers are the report columns in order.
var Headers = []string{"Room #", "Type", "Price/night", "Status", "Guest", "Check-in", "Check-out"}

var columnWidths = []float64{10, 16, 14, 12, 28, 18, 18}

// Exporter writes the ledger as an .xlsx occupancy report.
type Exporter struct {
	now func() time.Time
}

// NewExporter creates an exporter that stamps reports with the current time.
func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

var _ portssvc.ReportExporter = (*Exporter)(nil)

// ExportRooms writes one row per room, in ledger order, below a styled header.
func (e *Exporter) ExportRooms(ctx context.Context, w io.Writer, rooms []domain.Room) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	priceFormat := "#,##0.00"
	priceStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &priceFormat})
	if err != nil {
		return fmt.Errorf("failed to create price style: %w", err)
	}

	for col, header := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(SheetName, name, name, columnWidths[col]); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, r := range rooms {
		row := i + 2 // row 1 is the header
		price, _ := r.PricePerNight.Float64()
		values := []any{r.Number, r.Type, price, string(r.Status()), r.GuestName(), r.CheckedInAt().String(), r.CheckedOutAt.String()}
		for col, value := range values {
			if err := setCellValue(f, col+1, row, value); err != nil {
				return fmt.Errorf("failed to set cell value at row %d, col %d: %w", row, col+1, err)
			}
		}
		cell, _ := excelize.CoordinatesToCellName(3, row)
		if err := f.SetCellStyle(SheetName, cell, cell, priceStyle); err != nil {
			return fmt.Errorf("failed to set price style: %w", err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}

	f.SetDocProps(&excelize.DocProperties{
		Title:   "Room occupancy",
		Created: e.now().Format(time.RFC3339),
	})

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setCellValue(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, cell, value)
}

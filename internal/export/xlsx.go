// Package export turns a full record collection into a styled spreadsheet.
// The style contract mirrors the sheet users already receive: a bold yellow
// header, zebra data rows, green profit and red loss cells, frozen header,
// and an auto-filter over the whole range.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/finbook/finbook/internal/domain"
	"github.com/finbook/finbook/internal/format"
)

// ContentType is the standard spreadsheet MIME type.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetName is the single worksheet the export writes.
const SheetName = "Expenses"

// Headers is the fixed column order of the export.
var Headers = []string{"Title", "Category", "Date", "Profit", "Loss", "Notes"}

const (
	headerFill   = "FFF9C4" // light yellow
	zebraFill    = "F7FAFC" // light blue-gray
	borderBlack  = "000000"
	borderGray   = "AAAAAA"
	profitColor  = "008000"
	lossColor    = "CC0000"
	currencyFmt  = `"₹"#,##0.00`
	widthPadding = 15
)

// Filename returns a collision-free export name, e.g. expenses_1718000000000.xlsx.
func Filename(now time.Time) string {
	return fmt.Sprintf("expenses_%d.xlsx", now.UnixMilli())
}

// Serializer writes ledger entries into an xlsx workbook.
type Serializer struct{}

// NewSerializer creates a Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize renders the entries, in the order given, into a workbook and
// returns the raw file bytes. Zero entries yield a header-only sheet; the
// serializer itself never suppresses output.
func (s *Serializer) Serialize(entries []domain.Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	styles, err := newStyleSet(f)
	if err != nil {
		return nil, err
	}

	if err := s.writeHeader(f, styles); err != nil {
		return nil, err
	}

	for i, e := range entries {
		if err := s.writeRow(f, styles, i, e); err != nil {
			return nil, err
		}
	}

	if err := s.decorate(f, len(entries)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

type styleSet struct {
	header int
	plain  int
	zebra  int
	profit int
	loss   int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: borderBlack},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(borderBlack),
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	plain, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorder(borderGray),
	})
	if err != nil {
		return nil, fmt.Errorf("data style: %w", err)
	}

	zebra, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{zebraFill}},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorder(borderGray),
	})
	if err != nil {
		return nil, fmt.Errorf("zebra style: %w", err)
	}

	numFmt := currencyFmt
	profit, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: profitColor},
		Border:       thinBorder(borderGray),
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("profit style: %w", err)
	}

	loss, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: lossColor},
		Border:       thinBorder(borderGray),
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("loss style: %w", err)
	}

	return &styleSet{header: header, plain: plain, zebra: zebra, profit: profit, loss: loss}, nil
}

func thinBorder(color string) []excelize.Border {
	return []excelize.Border{
		{Type: "top", Style: 1, Color: color},
		{Type: "bottom", Style: 1, Color: color},
		{Type: "left", Style: 1, Color: color},
		{Type: "right", Style: 1, Color: color},
	}
}

func (s *Serializer) writeHeader(f *excelize.File, styles *styleSet) error {
	for col, h := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, cell, cell, styles.header); err != nil {
			return err
		}
	}
	return nil
}

// writeRow writes one data row. index is 0-based within the data region;
// even indices carry the zebra fill.
func (s *Serializer) writeRow(f *excelize.File, styles *styleSet, index int, e domain.Entry) error {
	row := index + 2

	profitVal, _ := e.Profit.Float64()
	lossVal, _ := e.Loss.Float64()

	values := []any{
		e.Title,
		e.Category.String(),
		format.ExportDate(e.Date),
		profitVal,
		lossVal,
		e.Notes,
	}

	rowStyle := styles.plain
	if index%2 == 0 {
		rowStyle = styles.zebra
	}

	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return err
		}

		style := rowStyle
		switch col {
		case 3:
			style = styles.profit
		case 4:
			style = styles.loss
		}
		if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return err
		}
	}

	return nil
}

// decorate applies the sheet-level extras: frozen header, auto-filter, and
// column widths derived from header text length.
func (s *Serializer) decorate(f *excelize.File, dataRows int) error {
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	lastCell, err := excelize.CoordinatesToCellName(len(Headers), dataRows+1)
	if err != nil {
		return err
	}
	if err := f.AutoFilter(SheetName, "A1:"+lastCell, nil); err != nil {
		return fmt.Errorf("auto filter: %w", err)
	}

	for col, h := range Headers {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, float64(len(h)+widthPadding)); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	return nil
}

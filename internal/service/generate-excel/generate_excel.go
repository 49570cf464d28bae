package generate_excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"care-payroll/internal/constants"
	"care-payroll/internal/service/payroll"
	"care-payroll/internal/storage"
)

type ReportCalculator interface {
	Calculate(ctx context.Context, src payroll.Source) (*payroll.Report, error)
}

type GenerateExcelService struct {
	calc ReportCalculator
}

func NewGenerateService(calc ReportCalculator) *GenerateExcelService {
	return &GenerateExcelService{calc: calc}
}

// GenerateExcel считает отчёт и отдаёт книгу из пяти листов.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, src payroll.Source) ([]byte, *payroll.Report, error) {
	report, err := g.calc.Calculate(ctx, src)
	if err != nil {
		return nil, nil, fmt.Errorf("calculate: %w", err)
	}

	buf, err := Render(report.Tables())
	if err != nil {
		return nil, nil, err
	}

	return buf, report, nil
}

// Render пишет таблицы в xlsx, по листу на таблицу.
func Render(tables []storage.Table) ([]byte, error) {
	const op = "service.generate_excel.Render"

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: style: %w", op, err)
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Sheet); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		} else if _, err := f.NewSheet(t.Sheet); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if err := writeTable(f, t, headerStyle); err != nil {
			return nil, fmt.Errorf("%s: sheet %s: %w", op, t.Sheet, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, t storage.Table, headerStyle int) error {
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(t.Sheet, "A1", &header); err != nil {
		return err
	}

	if len(t.Header) > 0 {
		lastCol, _ := excelize.CoordinatesToCellName(len(t.Header), 1)
		if err := f.SetCellStyle(t.Sheet, "A1", lastCol, headerStyle); err != nil {
			return err
		}
	}

	for i, row := range t.Rows {
		start, _ := excelize.CoordinatesToCellName(1, i+2)
		cells := row
		if err := f.SetSheetRow(t.Sheet, start, &cells); err != nil {
			return err
		}
	}

	// Закрепляем шапку
	if err := f.SetPanes(t.Sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	return f.SetColWidth(t.Sheet, "A", "B", 15)
}

// FileName — имя книги с отметкой времени прогона.
func FileName(now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", constants.ReportFilePrefix, now.Format("20060102_1504"))
}

// WriteFile сохраняет книгу в каталог и возвращает полный путь.
func WriteFile(dir string, now time.Time, data []byte) (string, error) {
	const op = "service.generate_excel.WriteFile"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return path, nil
}

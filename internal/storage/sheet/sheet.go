package sheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"care-payroll/internal/constants"
	"care-payroll/internal/storage"
)

var (
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrSchemaMismatch = errors.New("column schema mismatch")
)

// Workbook — источник одной книги: файл на диске или загруженные байты.
type Workbook struct {
	Name  string
	Sheet int
	data  []byte
}

// FileWorkbook откладывает чтение файла до загрузки.
func FileWorkbook(path string, sheet int) *Workbook {
	if path == "" {
		return nil
	}
	return &Workbook{Name: path, Sheet: sheet}
}

func BytesWorkbook(name string, data []byte, sheet int) *Workbook {
	return &Workbook{Name: name, Sheet: sheet, data: data}
}

func (w *Workbook) bytes() ([]byte, error) {
	if w.data != nil {
		return w.data, nil
	}
	return os.ReadFile(w.Name)
}

// Storage читает записи и таблицу замен из книг Excel.
type Storage struct {
	records *Workbook
	cover   *Workbook
}

// New принимает nil вместо cover, если замен нет.
func New(records, cover *Workbook) *Storage {
	return &Storage{records: records, cover: cover}
}

func (s *Storage) LoadRecords(ctx context.Context) ([]storage.RecordRow, error) {
	const op = "storage.sheet.LoadRecords"

	if s.records == nil {
		return nil, fmt.Errorf("%s: records workbook is not set", op)
	}

	rows, err := readSheet(ctx, s.records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx, err := columnIndex(rows[0], constants.RecordColumns)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, s.records.Name, err)
	}
	qtyCol, hasQty := findColumn(rows[0], constants.ColQuantity)

	var result []storage.RecordRow
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		rec := storage.RecordRow{
			Line:        i + 2,
			Employee:    cell(row, idx[constants.ColEmployee]),
			Case:        cell(row, idx[constants.ColCase]),
			ServiceCode: cell(row, idx[constants.ColServiceCode]),
			ServiceDate: cell(row, idx[constants.ColServiceDate]),
			StartHour:   cell(row, idx[constants.ColStartHour]),
			StartMinute: cell(row, idx[constants.ColStartMinute]),
			EndHour:     cell(row, idx[constants.ColEndHour]),
			EndMinute:   cell(row, idx[constants.ColEndMinute]),
		}
		if hasQty {
			rec.Quantity = cell(row, qtyCol)
		}
		result = append(result, rec)
	}

	return result, nil
}

func (s *Storage) LoadSubstitutions(ctx context.Context) ([]storage.SubstitutionRow, error) {
	const op = "storage.sheet.LoadSubstitutions"

	if s.cover == nil {
		return nil, nil
	}

	rows, err := readSheet(ctx, s.cover)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx, err := columnIndex(rows[0], constants.CoverColumns)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, s.cover.Name, err)
	}

	var result []storage.SubstitutionRow
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		result = append(result, storage.SubstitutionRow{
			Line:        i + 2,
			Original:    cell(row, idx[constants.ColCoverOriginal]),
			Substitute:  cell(row, idx[constants.ColCoverSubstitute]),
			Case:        cell(row, idx[constants.ColCoverCase]),
			ServiceDate: cell(row, idx[constants.ColCoverDate]),
		})
	}

	return result, nil
}

func readSheet(ctx context.Context, w *Workbook) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := w.bytes()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", w.Name, err)
	}

	if strings.EqualFold(filepath.Ext(w.Name), ".xls") {
		return readXLS(data, w)
	}
	return readXLSX(data, w)
}

func readXLSX(data []byte, w *Workbook) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", w.Name, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if w.Sheet < 1 || w.Sheet > len(sheets) {
		return nil, fmt.Errorf("%s: sheet %d of %d: %w", w.Name, w.Sheet, len(sheets), ErrSheetNotFound)
	}

	rows, err := f.GetRows(sheets[w.Sheet-1])
	if err != nil {
		return nil, fmt.Errorf("rows %s: %w", w.Name, err)
	}
	return rows, nil
}

func readXLS(data []byte, w *Workbook) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", w.Name, err)
	}

	if w.Sheet < 1 || w.Sheet > wb.NumSheets() {
		return nil, fmt.Errorf("%s: sheet %d of %d: %w", w.Name, w.Sheet, wb.NumSheets(), ErrSheetNotFound)
	}

	ws := wb.GetSheet(w.Sheet - 1)
	if ws == nil {
		return nil, fmt.Errorf("%s: sheet %d: %w", w.Name, w.Sheet, ErrSheetNotFound)
	}

	rows := make([][]string, 0, int(ws.MaxRow)+1)
	for r := 0; r <= int(ws.MaxRow); r++ {
		row := ws.Row(r)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells[c] = row.Col(c)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// normalizeHeader убирает пробелы и переносы строк: в выгрузках заголовок
// количества приходит то с переносом, то без.
func normalizeHeader(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func columnIndex(header []string, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(required))
	var missing []string
	for _, name := range required {
		col, ok := findColumn(header, name)
		if !ok {
			missing = append(missing, normalizeHeader(name))
			continue
		}
		idx[name] = col
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return idx, nil
}

func findColumn(header []string, name string) (int, bool) {
	want := normalizeHeader(name)
	for i, h := range header {
		if normalizeHeader(h) == want {
			return i, true
		}
	}
	return 0, false
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ReadAll нужен для загрузок из multipart: книга читается целиком в память.
func ReadAll(name string, r io.Reader, sheet int) (*Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return BytesWorkbook(name, data, sheet), nil
}

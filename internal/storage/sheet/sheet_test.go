package sheet

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"care-payroll/internal/constants"
)

// writeBook создаёт книгу: первый лист пустой служебный, второй — данные.
func writeBook(t *testing.T, name string, sheets map[string][][]any, order []string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet))
		} else {
			_, err := f.NewSheet(sheet)
			require.NoError(t, err)
		}
		for r, row := range sheets[sheet] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(sheet, cell, &values))
		}
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func recordHeader() []any {
	return []any{
		"序號", constants.ColEmployee, constants.ColCase, constants.ColServiceCode, constants.ColServiceDate,
		constants.ColStartHour, constants.ColStartMinute, constants.ColEndHour, constants.ColEndMinute,
		"數量 (僅整數)",
	}
}

func TestStorage_LoadRecords(t *testing.T) {
	path := writeBook(t, "records.xlsx", map[string][][]any{
		"說明": {{"info"}},
		"明細": {
			recordHeader(),
			{1, " 王小明 ", "陳阿嬤", "BA02", 1140602, 9, 0, 12, 30, nil},
			{nil},
			{3, "李大華", "林阿公", "GA09", 1140603, 10, 0, 11, 0, 2},
		},
	}, []string{"說明", "明細"})

	s := New(FileWorkbook(path, 2), nil)

	rows, err := s.LoadRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "王小明", rows[0].Employee)
	assert.Equal(t, "BA02", rows[0].ServiceCode)
	assert.Equal(t, "1140602", rows[0].ServiceDate)
	assert.Equal(t, "12", rows[0].EndHour)
	assert.Equal(t, "30", rows[0].EndMinute)
	assert.Equal(t, "", rows[0].Quantity)

	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "2", rows[1].Quantity)

	subs, err := s.LoadSubstitutions(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, subs)
}

func TestStorage_LoadSubstitutions(t *testing.T) {
	path := writeBook(t, "cover.xlsx", map[string][][]any{
		"代班": {
			{constants.ColCoverOriginal, constants.ColCoverSubstitute, constants.ColCoverCase, constants.ColCoverDate},
			{"王小明", "李大華", "陳阿嬤", 1140602},
		},
	}, []string{"代班"})

	s := New(nil, FileWorkbook(path, 1))

	rows, err := s.LoadSubstitutions(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "王小明", rows[0].Original)
	assert.Equal(t, "李大華", rows[0].Substitute)
	assert.Equal(t, "1140602", rows[0].ServiceDate)

	_, err = s.LoadRecords(context.Background())
	assert.Error(t, err)
}

func TestStorage_SchemaMismatch(t *testing.T) {
	path := writeBook(t, "records.xlsx", map[string][][]any{
		"明細": {{constants.ColEmployee, constants.ColCase}, {"A", "B"}},
	}, []string{"明細"})

	s := New(FileWorkbook(path, 1), nil)

	_, err := s.LoadRecords(context.Background())
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "服務項目代碼")
}

func TestStorage_SheetNotFound(t *testing.T) {
	path := writeBook(t, "records.xlsx", map[string][][]any{
		"明細": {recordHeader()},
	}, []string{"明細"})

	s := New(FileWorkbook(path, 2), nil)

	_, err := s.LoadRecords(context.Background())
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestStorage_UnreadableFile(t *testing.T) {
	s := New(FileWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"), 1), nil)

	_, err := s.LoadRecords(context.Background())
	assert.Error(t, err)
}

func TestStorage_CancelledContext(t *testing.T) {
	path := writeBook(t, "records.xlsx", map[string][][]any{
		"明細": {recordHeader()},
	}, []string{"明細"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(FileWorkbook(path, 1), nil).LoadRecords(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileWorkbook_EmptyPath(t *testing.T) {
	assert.Nil(t, FileWorkbook("", 1))
}

package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"care-payroll/internal/storage"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) LoadRecords(ctx context.Context) ([]storage.RecordRow, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	rows, ok := args.Get(0).([]storage.RecordRow)
	if !ok {
		return nil, fmt.Errorf("expected []storage.RecordRow, got %T", args.Get(0))
	}

	return rows, args.Error(1)
}

func (m *MockSource) LoadSubstitutions(ctx context.Context) ([]storage.SubstitutionRow, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	rows, ok := args.Get(0).([]storage.SubstitutionRow)
	if !ok {
		return nil, fmt.Errorf("expected []storage.SubstitutionRow, got %T", args.Get(0))
	}

	return rows, args.Error(1)
}

func row(line int, emp, caseName, code, date, sh, sm, eh, em string) storage.RecordRow {
	return storage.RecordRow{
		Line: line, Employee: emp, Case: caseName, ServiceCode: code, ServiceDate: date,
		StartHour: sh, StartMinute: sm, EndHour: eh, EndMinute: em,
	}
}

func TestCalculate(t *testing.T) {
	src := new(MockSource)
	src.On("LoadRecords", mock.Anything).Return([]storage.RecordRow{
		row(2, "E", "C", "BA01", "1140602", "9", "0", "12", "0"),
		row(3, "E", "C", "BA01", "1140602", "12", "5", "15", "5"),
		row(4, "E", "C", "OT99", "1140602", "9", "0", "10", "0"),
		row(5, "E", "C", "BA01", "1141340", "9", "0", "10", "0"),
		row(6, "E", "C", "BA01", "1140602", "", "0", "10", "0"),
		row(7, "F", "D", "BA01", "1140603", "9", "0", "10", "0"),
		{Line: 8, Employee: "F", Case: "D", ServiceCode: "SC01", ServiceDate: "1140603",
			StartHour: "10", StartMinute: "0", EndHour: "11", EndMinute: "0", Quantity: "3"},
	}, nil)
	src.On("LoadSubstitutions", mock.Anything).Return([]storage.SubstitutionRow{
		{Line: 2, Original: "F", Substitute: "S", Case: "D", ServiceDate: "1140603"},
		{Line: 3, Original: "F", Substitute: "S", Case: "D", ServiceDate: "bad"},
	}, nil)

	svc := newTestService(t)
	report, err := svc.Calculate(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Skipped.Total())
	assert.Equal(t, map[string]int{
		"unmatched_category":    1,
		"invalid_date_encoding": 2,
		"missing_field":         1,
	}, report.Skipped.ByReason)

	e := hoursRow(t, report, "E")
	assert.Equal(t, "6", e.Tier1.String())
	assert.Equal(t, 2, e.Transitions)
	assert.Equal(t, "1390", e.Pay.String())

	f := hoursRow(t, report, "F")
	assert.True(t, f.Pay.IsZero())

	require.Len(t, report.PrimaryCover, 1)
	assert.Equal(t, "255", report.PrimaryCover[0].Pay.String())
	require.Len(t, report.SecondaryCover, 1)
	assert.Equal(t, 3, report.SecondaryCover[0].Count)
	assert.Empty(t, report.Secondary)

	src.AssertExpectations(t)
}

func TestCalculate_SourceError(t *testing.T) {
	boom := errors.New("disk on fire")

	src := new(MockSource)
	src.On("LoadRecords", mock.Anything).Return(nil, boom)
	src.On("LoadSubstitutions", mock.Anything).Return(nil, nil).Maybe()

	svc := newTestService(t)
	report, err := svc.Calculate(context.Background(), src)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "service.payroll.Calculate")
}

func TestReason(t *testing.T) {
	assert.Equal(t, "missing_field", Reason(&RowError{Err: fmt.Errorf("%w: x", ErrMissingField)}))
	assert.Equal(t, "invalid_time_range", Reason(ErrInvalidTimeRange))
	assert.Equal(t, "other", Reason(errors.New("x")))
}

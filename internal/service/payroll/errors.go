package payroll

import (
	"errors"
	"fmt"
)

// Ошибки отдельной строки. Такие строки пропускаются и попадают в SkipSummary.
var (
	ErrInvalidDateEncoding = errors.New("invalid date encoding")
	ErrMissingField        = errors.New("missing field")
	ErrUnmatchedCategory   = errors.New("unmatched category")
	ErrInvalidTimeRange    = errors.New("invalid time range")
)

// RowError привязывает ошибку к строке исходного листа.
type RowError struct {
	Source string
	Line   int
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s line %d: %v", e.Source, e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Reason — метка причины пропуска для сводки и метрик.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidDateEncoding):
		return "invalid_date_encoding"
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrUnmatchedCategory):
		return "unmatched_category"
	case errors.Is(err, ErrInvalidTimeRange):
		return "invalid_time_range"
	default:
		return "other"
	}
}

// SkipSummary — пропущенные строки по причинам.
type SkipSummary struct {
	ByReason map[string]int `json:"by_reason"`
	Errors   []*RowError    `json:"-"`
}

func (s *SkipSummary) Add(err *RowError) {
	if s.ByReason == nil {
		s.ByReason = make(map[string]int)
	}
	s.ByReason[Reason(err)]++
	s.Errors = append(s.Errors, err)
}

func (s *SkipSummary) Total() int {
	return len(s.Errors)
}

package payroll

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"care-payroll/internal/constants"
	"care-payroll/internal/storage"
)

// rocEpoch — смещение летоисчисления Миньго.
const rocEpoch = 1911

type Category int

const (
	CategoryUnknown Category = iota
	CategoryPrimary
	CategorySecondary
)

func (c Category) String() string {
	switch c {
	case CategoryPrimary:
		return "primary"
	case CategorySecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// ServiceRecord — один визит после нормализации. Не меняется после создания.
type ServiceRecord struct {
	Seq      int
	Line     int
	Employee string
	Case     string
	Code     string
	Category Category
	Date     time.Time
	Start    time.Time
	End      time.Time
	Quantity int
}

func (r ServiceRecord) Minutes() int {
	return int(r.End.Sub(r.Start) / time.Minute)
}

// Classify проверяет код услуги по вхождению токенов, основная категория первая.
func Classify(code string) Category {
	for _, t := range constants.PrimaryTokens {
		if strings.Contains(code, t) {
			return CategoryPrimary
		}
	}
	for _, t := range constants.SecondaryTokens {
		if strings.Contains(code, t) {
			return CategorySecondary
		}
	}
	return CategoryUnknown
}

// ParseROCDate разбирает 7-значный код: 3 цифры года от 1911, месяц, день.
func ParseROCDate(code string) (time.Time, error) {
	n, err := parseWhole(code)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateEncoding, code)
	}
	if n <= 0 || n > 9999999 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateEncoding, code)
	}

	digits := fmt.Sprintf("%07d", n)
	year, _ := strconv.Atoi(digits[:3])
	month, _ := strconv.Atoi(digits[3:5])
	day, _ := strconv.Atoi(digits[5:7])

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: %q: month %d", ErrInvalidDateEncoding, code, month)
	}

	date := time.Date(rocEpoch+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if day < 1 || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q: day %d", ErrInvalidDateEncoding, code, day)
	}

	return date, nil
}

// Normalize превращает строку листа в ServiceRecord.
func Normalize(seq int, row storage.RecordRow) (ServiceRecord, error) {
	category := Classify(row.ServiceCode)
	if category == CategoryUnknown {
		return ServiceRecord{}, fmt.Errorf("%w: %q", ErrUnmatchedCategory, row.ServiceCode)
	}

	if row.ServiceDate == "" {
		return ServiceRecord{}, fmt.Errorf("%w: service date", ErrMissingField)
	}
	date, err := ParseROCDate(row.ServiceDate)
	if err != nil {
		return ServiceRecord{}, err
	}

	start, err := clock(date, row.StartHour, row.StartMinute, "start")
	if err != nil {
		return ServiceRecord{}, err
	}
	end, err := clock(date, row.EndHour, row.EndMinute, "end")
	if err != nil {
		return ServiceRecord{}, err
	}
	if end.Before(start) {
		return ServiceRecord{}, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidTimeRange, end.Format("15:04"), start.Format("15:04"))
	}

	qty := 1
	if row.Quantity != "" {
		qty, err = parseWhole(row.Quantity)
		if err != nil {
			return ServiceRecord{}, fmt.Errorf("%w: quantity %q", ErrMissingField, row.Quantity)
		}
	}

	return ServiceRecord{
		Seq:      seq,
		Line:     row.Line,
		Employee: strings.TrimSpace(row.Employee),
		Case:     strings.TrimSpace(row.Case),
		Code:     row.ServiceCode,
		Category: category,
		Date:     date,
		Start:    start,
		End:      end,
		Quantity: qty,
	}, nil
}

func clock(date time.Time, hour, minute, field string) (time.Time, error) {
	h, err := parseWhole(hour)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s hour %q", ErrMissingField, field, hour)
	}
	m, err := parseWhole(minute)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s minute %q", ErrMissingField, field, minute)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m > 0) {
		return time.Time{}, fmt.Errorf("%w: %s %02d:%02d", ErrInvalidTimeRange, field, h, m)
	}
	return date.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute), nil
}

// parseWhole принимает и "7", и "7.0": числовые ячейки Excel приходят по-разному.
func parseWhole(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return int(f), nil
}

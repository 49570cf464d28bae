package payroll

import (
	"io"
	"log/slog"
	"time"
)

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func at(date time.Time, clock string) time.Time {
	c, err := time.Parse("15:04", clock)
	if err != nil {
		panic(err)
	}
	return date.Add(time.Duration(c.Hour())*time.Hour + time.Duration(c.Minute())*time.Minute)
}

var seq int

func visit(emp, caseName, code, date, from, to string) ServiceRecord {
	seq++
	d := day(date)
	return ServiceRecord{
		Seq:      seq,
		Employee: emp,
		Case:     caseName,
		Code:     code,
		Category: Classify(code),
		Date:     d,
		Start:    at(d, from),
		End:      at(d, to),
		Quantity: 1,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

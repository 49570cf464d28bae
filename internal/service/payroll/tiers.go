package payroll

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	regularDayMinutes  = 480
	extendedDayMinutes = 600
)

type DayKind int

const (
	Weekday DayKind = iota
	Holiday
)

func (k DayKind) String() string {
	if k == Holiday {
		return "holiday"
	}
	return "weekday"
}

// Calendar — выходные и праздники из конфига в формате MM/DD.
type Calendar struct {
	holidays map[string]struct{}
}

func NewCalendar(holidays []string) (Calendar, error) {
	c := Calendar{holidays: make(map[string]struct{}, len(holidays))}
	for _, h := range holidays {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		key, err := holidayKey(h)
		if err != nil {
			return Calendar{}, err
		}
		c.holidays[key] = struct{}{}
	}
	return c, nil
}

func (c Calendar) Classify(date time.Time) DayKind {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return Holiday
	}
	if _, ok := c.holidays[date.Format("01/02")]; ok {
		return Holiday
	}
	return Weekday
}

// Holidays возвращает список в каноническом виде MM/DD.
func (c Calendar) Holidays() []string {
	out := make([]string, 0, len(c.holidays))
	for h := range c.holidays {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

func holidayKey(s string) (string, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return "", fmt.Errorf("holiday %q: want MM/DD", s)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return "", fmt.Errorf("holiday %q: bad month", s)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return "", fmt.Errorf("holiday %q: bad day", s)
	}
	return fmt.Sprintf("%02d/%02d", month, day), nil
}

// TierResult хранит минуты по ставкам и число переходов.
type TierResult struct {
	Tier1       int
	Tier2       int
	Tier3       int
	Holiday     int
	Transitions int
}

func (t TierResult) Minutes() int {
	return t.Tier1 + t.Tier2 + t.Tier3 + t.Holiday
}

func (t *TierResult) Add(o TierResult) {
	t.Tier1 += o.Tier1
	t.Tier2 += o.Tier2
	t.Tier3 += o.Tier3
	t.Holiday += o.Holiday
	t.Transitions += o.Transitions
}

// SplitDay раскладывает минуты дня по ставкам: 8ч, 8–10ч, сверх 10ч.
// В выходной всё идёт по праздничной ставке.
func SplitDay(minutes int, kind DayKind) TierResult {
	switch {
	case kind == Holiday:
		return TierResult{Holiday: minutes}
	case minutes > extendedDayMinutes:
		return TierResult{
			Tier1: regularDayMinutes,
			Tier2: extendedDayMinutes - regularDayMinutes,
			Tier3: minutes - extendedDayMinutes,
		}
	case minutes > regularDayMinutes:
		return TierResult{Tier1: regularDayMinutes, Tier2: minutes - regularDayMinutes}
	default:
		return TierResult{Tier1: minutes}
	}
}

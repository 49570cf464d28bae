package payroll

import (
	"sort"
	"time"
)

type CaseKey struct {
	Employee string
	Case     string
}

type PairKey struct {
	Employee   string
	Substitute string
}

func (k PairKey) Less(o PairKey) bool {
	if k.Employee != o.Employee {
		return k.Employee < o.Employee
	}
	return k.Substitute < o.Substitute
}

// employeeLedger — накопления одного сотрудника. Между сотрудниками не делится.
type employeeLedger struct {
	days        map[time.Time]int
	cases       map[string]map[time.Time]int
	primary     map[time.Time][]ServiceRecord
	transitions int
	secondary   int
}

func newEmployeeLedger() *employeeLedger {
	return &employeeLedger{
		days:    make(map[time.Time]int),
		cases:   make(map[string]map[time.Time]int),
		primary: make(map[time.Time][]ServiceRecord),
	}
}

// Accumulator собирает минуты, переходы и замены за один прогон.
type Accumulator struct {
	calendar       Calendar
	resolve        PayeeResolver
	employees      map[string]*employeeLedger
	primaryCover   map[PairKey]*TierResult
	secondaryCover map[PairKey]int
}

func NewAccumulator(calendar Calendar, resolve PayeeResolver) *Accumulator {
	if resolve == nil {
		resolve = Identity
	}
	return &Accumulator{
		calendar:       calendar,
		resolve:        resolve,
		employees:      make(map[string]*employeeLedger),
		primaryCover:   make(map[PairKey]*TierResult),
		secondaryCover: make(map[PairKey]int),
	}
}

func (a *Accumulator) ledger(employee string) *employeeLedger {
	l, ok := a.employees[employee]
	if !ok {
		l = newEmployeeLedger()
		a.employees[employee] = l
	}
	return l
}

// Add учитывает визит за тем, кому его оплачивают. Свои визиты копятся по дням
// и тарифицируются по итогу дня, визиты замены тарифицируются поштучно.
func (a *Accumulator) Add(rec ServiceRecord) {
	own := a.ledger(rec.Employee)
	payee := a.resolve(rec)

	switch rec.Category {
	case CategoryPrimary:
		own.primary[rec.Date] = append(own.primary[rec.Date], rec)
		if payee.Covered() {
			a.coverPrimary(payee.Pair()).Add(SplitDay(rec.Minutes(), a.calendar.Classify(rec.Date)))
			return
		}
		minutes := rec.Minutes()
		own.days[rec.Date] += minutes
		cells, ok := own.cases[rec.Case]
		if !ok {
			cells = make(map[time.Time]int)
			own.cases[rec.Case] = cells
		}
		cells[rec.Date] += minutes

	case CategorySecondary:
		if payee.Covered() {
			a.secondaryCover[payee.Pair()] += rec.Quantity
			return
		}
		own.secondary += rec.Quantity
	}
}

func (a *Accumulator) coverPrimary(k PairKey) *TierResult {
	t, ok := a.primaryCover[k]
	if !ok {
		t = &TierResult{}
		a.primaryCover[k] = t
	}
	return t
}

// countTransitions раздаёт переходы каждого дня: за сотрудником или за заменой
// по ключу визита, который открыл отрезок.
func (a *Accumulator) countTransitions() {
	for _, l := range a.employees {
		l.transitions = 0
		for _, day := range l.primary {
			for _, rec := range Transitions(day) {
				if payee := a.resolve(rec); payee.Covered() {
					a.coverPrimary(payee.Pair()).Transitions++
					continue
				}
				l.transitions++
			}
		}
	}
}

// Tiers тарифицирует дни сотрудника по их итогам.
func (a *Accumulator) Tiers(employee string) TierResult {
	l, ok := a.employees[employee]
	if !ok {
		return TierResult{}
	}
	var total TierResult
	for date, minutes := range l.days {
		total.Add(SplitDay(minutes, a.calendar.Classify(date)))
	}
	total.Transitions = l.transitions
	return total
}

func (a *Accumulator) Employees() []string {
	out := make([]string, 0, len(a.employees))
	for e := range a.employees {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

func (a *Accumulator) coverPairs(primary bool) []PairKey {
	var out []PairKey
	if primary {
		for k := range a.primaryCover {
			out = append(out, k)
		}
	} else {
		for k := range a.secondaryCover {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Run прогоняет все записи и считает переходы. Записи идут в порядке входа.
func (a *Accumulator) Run(records []ServiceRecord) {
	for _, rec := range records {
		a.Add(rec)
	}
	a.countTransitions()
}

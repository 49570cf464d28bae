package payroll

import (
	"strings"
	"time"

	"care-payroll/internal/storage"
)

type SubstitutionKey struct {
	Employee string
	Case     string
	Date     time.Time
}

// SubstitutionMap — кто кого заменял. Заполняется один раз, дальше только чтение.
type SubstitutionMap map[SubstitutionKey]string

// BuildSubstitutions собирает карту замен. Повтор ключа перезаписывает
// предыдущую запись, плохие строки возвращаются отдельно.
func BuildSubstitutions(rows []storage.SubstitutionRow) (SubstitutionMap, []*RowError) {
	m := make(SubstitutionMap, len(rows))
	var skipped []*RowError

	for _, row := range rows {
		original := strings.TrimSpace(row.Original)
		substitute := strings.TrimSpace(row.Substitute)
		if original == "" || substitute == "" {
			skipped = append(skipped, &RowError{Source: "cover", Line: row.Line, Err: ErrMissingField})
			continue
		}

		date, err := ParseROCDate(row.ServiceDate)
		if err != nil {
			skipped = append(skipped, &RowError{Source: "cover", Line: row.Line, Err: err})
			continue
		}

		m[SubstitutionKey{Employee: original, Case: strings.TrimSpace(row.Case), Date: date}] = substitute
	}

	return m, skipped
}

func (m SubstitutionMap) Resolve(employee, caseName string, date time.Time) (string, bool) {
	sub, ok := m[SubstitutionKey{Employee: employee, Case: caseName, Date: date}]
	return sub, ok
}

// Payee — кому идёт оплата визита. Пустой Substitute означает самого сотрудника.
type Payee struct {
	Employee   string
	Substitute string
}

func (p Payee) Covered() bool {
	return p.Substitute != ""
}

func (p Payee) Pair() PairKey {
	return PairKey{Employee: p.Employee, Substitute: p.Substitute}
}

type PayeeResolver func(rec ServiceRecord) Payee

// Identity оставляет оплату за сотрудником.
func Identity(rec ServiceRecord) Payee {
	return Payee{Employee: rec.Employee}
}

func (m SubstitutionMap) Resolver() PayeeResolver {
	return func(rec ServiceRecord) Payee {
		if sub, ok := m.Resolve(rec.Employee, rec.Case, rec.Date); ok {
			return Payee{Employee: rec.Employee, Substitute: sub}
		}
		return Identity(rec)
	}
}

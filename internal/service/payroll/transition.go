package payroll

import (
	"sort"
	"time"
)

const transitionGap = time.Minute

// Transitions возвращает визиты, открывающие новый отрезок работы за день.
// На входе визиты основной категории одного сотрудника за одну дату.
// Первый визит дня считается всегда, дальше — каждый разрыв строго больше минуты.
func Transitions(day []ServiceRecord) []ServiceRecord {
	if len(day) == 0 {
		return nil
	}

	sorted := make([]ServiceRecord, len(day))
	copy(sorted, day)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	result := []ServiceRecord{sorted[0]}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start.Sub(sorted[i-1].End) > transitionGap {
			result = append(result, sorted[i])
		}
	}
	return result
}

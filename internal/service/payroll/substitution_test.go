package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"care-payroll/internal/storage"
)

func TestBuildSubstitutions(t *testing.T) {
	rows := []storage.SubstitutionRow{
		{Line: 2, Original: " E ", Substitute: "S1", Case: "C", ServiceDate: "1140602"},
		{Line: 3, Original: "E", Substitute: "S2", Case: "C", ServiceDate: "1140602"},
		{Line: 4, Original: "F", Substitute: "S1", Case: "D", ServiceDate: "1140603"},
		{Line: 5, Original: "G", Substitute: "S3", Case: "D", ServiceDate: "1141399"},
		{Line: 6, Original: "", Substitute: "S3", Case: "D", ServiceDate: "1140603"},
	}

	m, skipped := BuildSubstitutions(rows)

	require.Len(t, m, 2)
	require.Len(t, skipped, 2)
	assert.ErrorIs(t, skipped[0], ErrInvalidDateEncoding)
	assert.Equal(t, 5, skipped[0].Line)
	assert.ErrorIs(t, skipped[1], ErrMissingField)

	// повтор ключа: побеждает последняя запись
	sub, ok := m.Resolve("E", "C", day("2025-06-02"))
	assert.True(t, ok)
	assert.Equal(t, "S2", sub)

	sub, ok = m.Resolve("F", "D", day("2025-06-03"))
	assert.True(t, ok)
	assert.Equal(t, "S1", sub)

	_, ok = m.Resolve("F", "D", day("2025-06-04"))
	assert.False(t, ok)
	_, ok = m.Resolve("F", "C", day("2025-06-03"))
	assert.False(t, ok)
}

func TestResolver(t *testing.T) {
	rec := visit("E", "C", "BA01", "2025-06-02", "09:00", "10:00")

	assert.False(t, Identity(rec).Covered())

	var empty SubstitutionMap
	assert.Equal(t, Payee{Employee: "E"}, empty.Resolver()(rec))

	m := SubstitutionMap{{Employee: "E", Case: "C", Date: day("2025-06-02")}: "S"}
	p := m.Resolver()(rec)
	assert.True(t, p.Covered())
	assert.Equal(t, PairKey{Employee: "E", Substitute: "S"}, p.Pair())
}

package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("provider_id", "work_from").
		From("provider_schedules").
		Where(squirrel.Eq{"provider_id": 7}).
		Where(squirrel.Eq{"schedule_date": "2026-10-18"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT provider_id, work_from FROM provider_schedules WHERE provider_id = $1 AND schedule_date = $2", query)
	assert.Equal(t, []interface{}{7, "2026-10-18"}, args)
}

func TestInsert_DollarPlaceholders(t *testing.T) {
	query, args, err := Insert("schedule_intervals").
		Columns("provider_id", "kind").
		Values(1, "break").
		Values(1, "booking").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO schedule_intervals (provider_id,kind) VALUES ($1,$2),($3,$4)", query)
	assert.Len(t, args, 4)
}

func TestDelete_DollarPlaceholders(t *testing.T) {
	query, _, err := Delete("schedule_intervals").Where(squirrel.Eq{"provider_id": 1}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM schedule_intervals WHERE provider_id = $1", query)
}

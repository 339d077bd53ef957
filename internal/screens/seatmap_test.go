package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLayout(t *testing.T) {
	assert.NoError(t, ValidateLayout([]string{"A1", "A2", "B1"}))
	assert.NoError(t, ValidateLayout([]string{"AA1", "AA10", "ZZZ999"}))

	assert.Error(t, ValidateLayout(nil))
	assert.Error(t, ValidateLayout([]string{}))
	assert.Error(t, ValidateLayout([]string{"A1", "A1"}))
	assert.Error(t, ValidateLayout([]string{"a1"}))
	assert.Error(t, ValidateLayout([]string{"1A"}))
	assert.Error(t, ValidateLayout([]string{"A"}))
	assert.Error(t, ValidateLayout([]string{"A1234"}))
	assert.Error(t, ValidateLayout([]string{"A 1"}))
	assert.Error(t, ValidateLayout([]string{""}))
}

func TestGroupByRowPreservesOrder(t *testing.T) {
	rows := GroupByRow([]string{"B1", "B2", "A1", "B3", "A2"})
	require.Len(t, rows, 2)

	assert.Equal(t, "B", rows[0].Row)
	assert.Equal(t, []string{"B1", "B2", "B3"}, rows[0].Seats)
	assert.Equal(t, "A", rows[1].Row)
	assert.Equal(t, []string{"A1", "A2"}, rows[1].Seats)
}

func TestGroupByRowMultiLetterRows(t *testing.T) {
	rows := GroupByRow([]string{"AA1", "AA2", "AB1"})
	require.Len(t, rows, 2)
	assert.Equal(t, "AA", rows[0].Row)
	assert.Equal(t, "AB", rows[1].Row)
}

func TestGroupByRowEmpty(t *testing.T) {
	assert.Empty(t, GroupByRow(nil))
}

func TestLayoutSet(t *testing.T) {
	set := LayoutSet([]string{"A1", "B2"})
	assert.True(t, set["A1"])
	assert.True(t, set["B2"])
	assert.False(t, set["C3"])
}

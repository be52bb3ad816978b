package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finmetrics/pkg/core/units"
)

func TestConvertTo(t *testing.T) {
	ds := NewDataset(units.Crore)
	ds.Values["revenue_from_operations"] = 150
	ds.Values["cash_and_equivalents"] = 12.5
	ds.Values["shares_outstanding"] = 1_000_000

	out, err := ds.ConvertTo(units.Million)
	require.NoError(t, err)

	assert.Equal(t, ds.ID, out.ID)
	assert.Equal(t, units.Million, out.Unit)
	assert.InDelta(t, 1500, out.Values["revenue_from_operations"], 1e-9)
	assert.InDelta(t, 125, out.Values["cash_and_equivalents"], 1e-9)

	// Absolute fields pass through untouched.
	assert.Equal(t, 1_000_000.0, out.Values["shares_outstanding"])

	// The source dataset is not mutated.
	assert.Equal(t, units.Crore, ds.Unit)
	assert.Equal(t, 150.0, ds.Values["revenue_from_operations"])
}

func TestConvertToSameUnit(t *testing.T) {
	ds := NewDataset(units.Million)
	ds.Values["goodwill"] = 7.25

	out, err := ds.ConvertTo(units.Million)
	require.NoError(t, err)
	assert.Equal(t, 7.25, out.Values["goodwill"])
}

func TestConvertToUnknownUnit(t *testing.T) {
	ds := NewDataset(units.Million)
	_, err := ds.ConvertTo(units.Unit("dozen"))
	assert.Error(t, err)
}

func TestNewDatasetAssignsID(t *testing.T) {
	a := NewDataset(units.Crore)
	b := NewDataset(units.Crore)
	assert.NotEqual(t, a.ID, b.ID)
}

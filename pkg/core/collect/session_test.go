package collect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finmetrics/pkg/core/units"
)

func newTestSession(input string) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSession(strings.NewReader(input), &out), &out
}

func TestReadFloat(t *testing.T) {
	s, _ := newTestSession("1234.56\n")
	v, err := s.ReadFloat("value: ")
	require.NoError(t, err)
	assert.Equal(t, 1234.56, v)
}

func TestReadFloatBlankDefaultsToZero(t *testing.T) {
	s, _ := newTestSession("\n")
	v, err := s.ReadFloat("value: ")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestReadFloatStripsCommas(t *testing.T) {
	s, _ := newTestSession("1,000,000.25\n")
	v, err := s.ReadFloat("value: ")
	require.NoError(t, err)
	assert.Equal(t, 1000000.25, v)
}

func TestReadFloatRepromptsOnGarbage(t *testing.T) {
	s, out := newTestSession("abc\n42\n")
	v, err := s.ReadFloat("value: ")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
	assert.Contains(t, out.String(), "Invalid input")
}

func TestChooseUnit(t *testing.T) {
	// Menu is ordered by magnitude, so 1 is thousand and 5 is billion.
	s, out := newTestSession("1\n")
	u, err := s.ChooseUnit("pick a unit")
	require.NoError(t, err)
	assert.Equal(t, units.Thousand, u)
	assert.Contains(t, out.String(), "Unit Reference Table")
	assert.Contains(t, out.String(), "Crore (Cr)")

	s, _ = newTestSession("5\n")
	u, err = s.ChooseUnit("pick a unit")
	require.NoError(t, err)
	assert.Equal(t, units.Billion, u)
}

func TestChooseUnitRejectsOutOfRange(t *testing.T) {
	s, out := newTestSession("9\nx\n3\n")
	u, err := s.ChooseUnit("pick a unit")
	require.NoError(t, err)
	assert.Equal(t, units.Million, u)
	assert.Contains(t, out.String(), "Invalid choice")
	assert.Contains(t, out.String(), "Invalid input")
}

func TestConfirm(t *testing.T) {
	s, _ := newTestSession("maybe\nYES\n")
	ok, err := s.Confirm("convert? ")
	require.NoError(t, err)
	assert.True(t, ok)

	s, _ = newTestSession("n\n")
	ok, err = s.Confirm("convert? ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollectWalksEveryField(t *testing.T) {
	fields, err := Fields()
	require.NoError(t, err)

	// Answer every prompt with a blank line, accepting the 0 default.
	input := strings.Repeat("\n", len(fields))
	s, out := newTestSession(input)

	ds, err := s.Collect(units.Crore)
	require.NoError(t, err)
	assert.Equal(t, units.Crore, ds.Unit)
	assert.Len(t, ds.Values, len(fields))
	for _, f := range fields {
		assert.Contains(t, ds.Values, f.Key)
	}
	assert.Contains(t, out.String(), "Balance Sheet")
	assert.Contains(t, out.String(), "Statement of Cash Flows")
	assert.Contains(t, out.String(), "absolute numbers")
}

func TestCatalog(t *testing.T) {
	stmts, err := Statements()
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Equal(t, "Balance Sheet (Statement of Financial Position)", stmts[0].Title)

	absolute, err := AbsoluteFields()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"shares_outstanding":        true,
		"face_value_per_share":      true,
		"weighted_avg_shares":       true,
		"dilutive_potential_shares": true,
	}, absolute)
}

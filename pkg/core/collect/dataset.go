package collect

import (
	"fmt"

	"github.com/google/uuid"

	"finmetrics/pkg/core/units"
)

// Dataset is one collection session's figures, keyed by field key, with
// the reporting unit the monetary figures were entered in.
type Dataset struct {
	ID     uuid.UUID          `json:"id"`
	Unit   units.Unit         `json:"unit"`
	Values map[string]float64 `json:"values"`
}

// NewDataset returns an empty dataset in the given unit.
func NewDataset(unit units.Unit) *Dataset {
	return &Dataset{
		ID:     uuid.New(),
		Unit:   unit,
		Values: make(map[string]float64),
	}
}

// ConvertTo re-expresses all monetary figures in the target unit and
// returns a new dataset. Absolute fields (share counts, per-share values)
// are carried over unchanged. The dataset keeps its ID; the unit changes.
func (d *Dataset) ConvertTo(target units.Unit) (*Dataset, error) {
	if !units.Valid(target) {
		return nil, fmt.Errorf("unknown target unit %q", target)
	}
	absolute, err := AbsoluteFields()
	if err != nil {
		return nil, err
	}
	out := &Dataset{
		ID:     d.ID,
		Unit:   target,
		Values: make(map[string]float64, len(d.Values)),
	}
	for key, value := range d.Values {
		if absolute[key] {
			out.Values[key] = value
			continue
		}
		converted, err := units.Convert(value, d.Unit, target)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", key, err)
		}
		out.Values[key] = converted
	}
	return out, nil
}

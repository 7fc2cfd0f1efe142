package enum

import (
	"encoding/json"
	"strings"
)

// Measure is the scalar computed for every group of a chart series
type Measure int

const (
	// MeasureUnspecified behaves like MeasureAmount
	MeasureUnspecified Measure = iota
	MeasureAmount
	MeasureCount
	MeasureAverage
)

// Measures lists the selectable measures in display order
var Measures = []Measure{MeasureAmount, MeasureCount, MeasureAverage}

func (m Measure) String() string {
	names := [...]string{"", "Amount", "Count", "Average"}
	if int(m) < 0 || int(m) >= len(names) {
		return ""
	}
	return names[m]
}

// Label returns the measure title shown on the value axis of a chart
func (m Measure) Label() string {
	switch m {
	case MeasureAmount:
		return "Sales Amount ($)"
	case MeasureCount:
		return "Transaction Count"
	case MeasureAverage:
		return "Average Sale ($)"
	default:
		return m.String()
	}
}

// OptionText is the shorter text used in selector lists
func (m Measure) OptionText() string {
	switch m {
	case MeasureAmount:
		return "Sales Amount"
	case MeasureCount:
		return "Transaction Count"
	case MeasureAverage:
		return "Average Sale"
	default:
		return m.String()
	}
}

// ParseMeasure resolves a measure token case-insensitively
func ParseMeasure(token string) (Measure, bool) {
	for _, m := range Measures {
		if strings.EqualFold(token, m.String()) {
			return m, true
		}
	}
	return MeasureUnspecified, false
}

func (m Measure) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Measure) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*m, _ = ParseMeasure(str)
	return nil
}

// DisplayLabel maps an axis or measure token to its display text.
// Unrecognised tokens are returned unchanged.
func DisplayLabel(token string) string {
	if a, ok := ParseAxis(token); ok {
		return a.Label()
	}
	if m, ok := ParseMeasure(token); ok {
		return m.Label()
	}
	return token
}

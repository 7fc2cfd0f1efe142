package enum

import (
	"encoding/json"
	"strings"
)

// Axis is the dimension sales are grouped by when building a chart series
type Axis int

const (
	AxisUnknown Axis = iota
	AxisMonth
	AxisCategory
	AxisRegion
	AxisSalesperson
	AxisProduct
)

// Axes lists the selectable axes in display order
var Axes = []Axis{AxisMonth, AxisCategory, AxisRegion, AxisSalesperson, AxisProduct}

func (a Axis) String() string {
	names := [...]string{"", "Month", "Category", "Region", "Salesperson", "Product"}
	if int(a) < 0 || int(a) >= len(names) {
		return ""
	}
	return names[a]
}

// Label returns the axis title shown next to a chart
func (a Axis) Label() string {
	return a.String()
}

// ParseAxis resolves an axis token case-insensitively
func ParseAxis(token string) (Axis, bool) {
	for _, a := range Axes {
		if strings.EqualFold(token, a.String()) {
			return a, true
		}
	}
	return AxisUnknown, false
}

func (a Axis) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Axis) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*a, _ = ParseAxis(str)
	return nil
}

package exporter

import (
	"fmt"
	"strconv"
)

// formatCell renders a table cell for text formats. Floats keep their
// shortest exact representation so re-imported values round-trip.
func formatCell(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

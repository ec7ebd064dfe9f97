package constant

import "strings"

// AlertType classifies a per-SKU alert threshold.
type AlertType string

const (
	AlertLowStock    AlertType = "LOW_STOCK"
	AlertExcessStock AlertType = "EXCESS_STOCK"
	AlertNoMovement  AlertType = "NO_MOVEMENT"
)

var alertTypes = map[AlertType]struct{}{
	AlertLowStock:    {},
	AlertExcessStock: {},
	AlertNoMovement:  {},
}

// ParseAlertType converts a raw string into an AlertType, case-insensitive.
func ParseAlertType(raw string) (AlertType, bool) {
	at := AlertType(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := alertTypes[at]
	return at, ok
}

func (a AlertType) String() string {
	return string(a)
}

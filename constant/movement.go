package constant

import "strings"

// MovementType enumerates the kinds of stock quantity change.
type MovementType string

const (
	MovementEntry          MovementType = "ENTRY"
	MovementExit           MovementType = "EXIT"
	MovementAdjustment     MovementType = "ADJUSTMENT"
	MovementReserve        MovementType = "RESERVE"
	MovementRelease        MovementType = "RELEASE"
	MovementCustomerReturn MovementType = "CUSTOMER_RETURN"
	MovementSupplierReturn MovementType = "SUPPLIER_RETURN"
)

var movementTypes = map[MovementType]struct{}{
	MovementEntry:          {},
	MovementExit:           {},
	MovementAdjustment:     {},
	MovementReserve:        {},
	MovementRelease:        {},
	MovementCustomerReturn: {},
	MovementSupplierReturn: {},
}

// ParseMovementType converts a raw string into a MovementType, case-insensitive.
// The boolean is false when the string names no known movement.
func ParseMovementType(raw string) (MovementType, bool) {
	mt := MovementType(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := movementTypes[mt]
	return mt, ok
}

func (m MovementType) String() string {
	return string(m)
}

// Description returns the human readable label used as the default movement reason.
func (m MovementType) Description() string {
	switch m {
	case MovementEntry:
		return "stock entry"
	case MovementExit:
		return "stock exit"
	case MovementAdjustment:
		return "inventory adjustment"
	case MovementReserve:
		return "stock reservation"
	case MovementRelease:
		return "reserved stock release"
	case MovementCustomerReturn:
		return "customer return"
	case MovementSupplierReturn:
		return "return to supplier"
	default:
		return string(m)
	}
}

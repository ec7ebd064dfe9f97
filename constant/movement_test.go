package constant_test

import (
	"testing"

	"github.com/retailmax/inventario/constant"
)

func TestParseMovementType(t *testing.T) {
	tests := []struct {
		raw    string
		want   constant.MovementType
		wantOk bool
	}{
		{"ENTRY", constant.MovementEntry, true},
		{"entry", constant.MovementEntry, true},
		{" exit ", constant.MovementExit, true},
		{"Customer_Return", constant.MovementCustomerReturn, true},
		{"RESERVE", constant.MovementReserve, true},
		{"TELEPORT", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := constant.ParseMovementType(tt.raw)
		if ok != tt.wantOk {
			t.Fatalf("ParseMovementType(%q) ok = %v, want %v", tt.raw, ok, tt.wantOk)
		}
		if ok && got != tt.want {
			t.Fatalf("ParseMovementType(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

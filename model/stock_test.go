package model_test

import (
	"testing"

	"github.com/retailmax/inventario/model"
)

func TestStockItem_Available(t *testing.T) {
	tests := []struct {
		name string
		item model.StockItem
		want int64
	}{
		{
			name: "on hand minus reserved and in transit",
			item: model.StockItem{QuantityOnHand: 100, QuantityReserved: 30, QuantityInTransit: 20},
			want: 50,
		},
		{
			name: "zero record",
			item: model.StockItem{},
			want: 0,
		},
		{
			name: "fully reserved",
			item: model.StockItem{QuantityOnHand: 10, QuantityReserved: 10},
			want: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Available(); got != tt.want {
				t.Fatalf("Available() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStockItem_CheckConsistency(t *testing.T) {
	tests := []struct {
		name    string
		item    model.StockItem
		wantErr bool
	}{
		{
			name: "consistent record",
			item: model.StockItem{QuantityOnHand: 100, QuantityReserved: 30, QuantityInTransit: 20},
		},
		{
			name:    "negative on hand",
			item:    model.StockItem{QuantityOnHand: -1},
			wantErr: true,
		},
		{
			name:    "negative reserved",
			item:    model.StockItem{QuantityOnHand: 10, QuantityReserved: -1},
			wantErr: true,
		},
		{
			name:    "reserved plus in transit exceeds on hand",
			item:    model.StockItem{QuantityOnHand: 10, QuantityReserved: 8, QuantityInTransit: 5},
			wantErr: true,
		},
		{
			name: "boundary: reserved plus in transit equals on hand",
			item: model.StockItem{QuantityOnHand: 10, QuantityReserved: 5, QuantityInTransit: 5},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.CheckConsistency()
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckConsistency() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

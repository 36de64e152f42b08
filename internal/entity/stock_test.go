package entity

import (
	"errors"
	"testing"
)

func TestNewStock(t *testing.T) {
	tests := []struct {
		name     string
		quantity int64
		wantErr  bool
	}{
		{name: "positive quantity", quantity: 10, wantErr: false},
		{name: "zero quantity", quantity: 0, wantErr: false},
		{name: "negative quantity", quantity: -1, wantErr: true},
		{name: "large negative quantity", quantity: -1000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStock(1, tt.quantity)

			if tt.wantErr {
				var invalid *InvalidStockError
				if !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidStockError, got %v", err)
				}
				if invalid.Error() != "Quantity value must be higher than -1" {
					t.Errorf("unexpected message: %s", invalid.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.ID() != 0 {
				t.Errorf("new stock id = %d, want 0", s.ID())
			}
			if s.ProductID() != 1 {
				t.Errorf("product id = %d, want 1", s.ProductID())
			}
			if s.Quantity() != tt.quantity {
				t.Errorf("quantity = %d, want %d", s.Quantity(), tt.quantity)
			}
		})
	}
}

func TestStockSetQuantity(t *testing.T) {
	s, err := NewStock(1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.SetQuantity(-1); err == nil {
		t.Fatal("expected error for negative quantity")
	}
	if s.Quantity() != 5 {
		t.Errorf("quantity changed on failed mutation: %d", s.Quantity())
	}

	if err := s.SetQuantity(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Quantity() != 0 {
		t.Errorf("quantity = %d, want 0", s.Quantity())
	}
}

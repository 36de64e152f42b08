package entity

import (
	"errors"
	"testing"
	"time"
)

func TestLoadCategory(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		rawType string
		wantErr bool
	}{
		{name: "meal", rawType: "MEAL", wantErr: false},
		{name: "drink", rawType: "DRINK", wantErr: false},
		{name: "side", rawType: "SIDE", wantErr: false},
		{name: "dessert", rawType: "DESSERT", wantErr: false},
		{name: "unknown type", rawType: "BREAKFAST", wantErr: true},
		{name: "lowercase is not recognized", rawType: "meal", wantErr: true},
		{name: "empty type", rawType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadCategory(1, now, now, tt.rawType)

			if tt.wantErr {
				var invalid *InvalidCategoryError
				if !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidCategoryError, got %v", err)
				}
				if invalid.Error() != "Type must be MEAL, DRINK, SIDE or DESSERT" {
					t.Errorf("unexpected message: %s", invalid.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(c.Type()) != tt.rawType {
				t.Errorf("type = %s, want %s", c.Type(), tt.rawType)
			}
		})
	}
}

func TestCategorySetType(t *testing.T) {
	now := time.Now()
	c, err := LoadCategory(1, now, now, "MEAL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.SetType("DRINK"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Type() != CategoryDrink {
		t.Errorf("type = %s, want DRINK", c.Type())
	}

	// A rejected mutation must not change the held value
	if err := c.SetType("SOUP"); err == nil {
		t.Fatal("expected error for unknown type")
	}
	if c.Type() != CategoryDrink {
		t.Errorf("type changed on failed mutation: %s", c.Type())
	}
}

package model

import (
	"errors"
	"testing"
)

func TestNewProduct_Valid(t *testing.T) {
	p, err := NewProduct("P001", "Laptop", 1200.00, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() != "P001" || p.Name() != "Laptop" {
		t.Errorf("unexpected identity: %s %s", p.ID(), p.Name())
	}
	if p.Price() != 1200.00 {
		t.Errorf("expected price 1200.00, got %f", p.Price())
	}
	if p.Stock() != 10 {
		t.Errorf("expected stock 10, got %d", p.Stock())
	}
}

func TestNewProduct_Invalid(t *testing.T) {
	cases := []struct {
		name      string
		id, pname string
		price     float64
		stock     int
	}{
		{"precio negativo", "P001", "Laptop", -1, 10},
		{"stock negativo", "P001", "Laptop", 100, -1},
		{"id vacío", "", "Laptop", 100, 10},
		{"id en blanco", "   ", "Laptop", 100, 10},
		{"nombre vacío", "P001", "", 100, 10},
		{"nombre en blanco", "P001", "  ", 100, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewProduct(c.id, c.pname, c.price, c.stock); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestHasStock_Boundaries(t *testing.T) {
	p, _ := NewProduct("P001", "Laptop", 1200.00, 10)

	if !p.HasStock(10) {
		t.Error("expected HasStock(stock) to be true")
	}
	if p.HasStock(11) {
		t.Error("expected HasStock(stock+1) to be false")
	}
	if !p.HasStock(0) {
		t.Error("expected HasStock(0) to be true")
	}
}

func TestReduceStock(t *testing.T) {
	p, _ := NewProduct("P001", "Laptop", 1200.00, 10)

	if err := p.ReduceStock(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Stock() != 6 {
		t.Errorf("expected stock 6, got %d", p.Stock())
	}

	if err := p.ReduceStock(7); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument reducing past stock, got %v", err)
	}
	if p.Stock() != 6 {
		t.Errorf("failed reduce must not change stock, got %d", p.Stock())
	}
}

func TestAddStock(t *testing.T) {
	p, _ := NewProduct("P001", "Laptop", 1200.00, 10)

	if err := p.AddStock(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for negative amount, got %v", err)
	}
	if err := p.AddStock(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Stock() != 15 {
		t.Errorf("expected stock 15, got %d", p.Stock())
	}
}

func TestReduceThenAddStock_RoundTrip(t *testing.T) {
	p, _ := NewProduct("P001", "Laptop", 1200.00, 10)

	if err := p.ReduceStock(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.AddStock(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Stock() != 10 {
		t.Errorf("expected stock restored to 10, got %d", p.Stock())
	}
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/ahinestrog/techstore/internal/cart"
)

func newRepo(t *testing.T) *Repository {
	t.Helper()
	r, err := NewRepository(DefaultDSN)
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestListOrders_Empty(t *testing.T) {
	r := newRepo(t)

	orders, err := r.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("expected no orders, got %d", len(orders))
	}
}

func TestSaveAndListOrders(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	first := &cart.Order{
		ID:        "ord-1",
		CreatedAt: time.Unix(1700000000, 0),
		Total:     2476.50,
		Lines: []cart.OrderLine{
			{ProductID: "P001", Name: "Laptop Dell", Quantity: 2, UnitPrice: 1200.00, Subtotal: 2400.00},
			{ProductID: "P002", Name: "Mouse Logitech", Quantity: 3, UnitPrice: 25.50, Subtotal: 76.50},
		},
	}
	second := &cart.Order{
		ID:        "ord-2",
		CreatedAt: time.Unix(1700000100, 0),
		Total:     75.00,
		Lines: []cart.OrderLine{
			{ProductID: "P003", Name: "Teclado Mecánico", Quantity: 1, UnitPrice: 75.00, Subtotal: 75.00},
		},
	}

	if err := r.SaveOrder(ctx, first); err != nil {
		t.Fatalf("SaveOrder first: %v", err)
	}
	if err := r.SaveOrder(ctx, second); err != nil {
		t.Fatalf("SaveOrder second: %v", err)
	}

	orders, err := r.ListOrders(ctx)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	// Orden cronológico.
	if orders[0].ID != "ord-1" || orders[1].ID != "ord-2" {
		t.Errorf("expected chronological order, got %s, %s", orders[0].ID, orders[1].ID)
	}

	got := orders[0]
	if got.Total != 2476.50 {
		t.Errorf("expected total 2476.50, got %f", got.Total)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("expected created at %v, got %v", first.CreatedAt, got.CreatedAt)
	}
	if len(got.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got.Lines))
	}
	if got.Lines[0].ProductID != "P001" || got.Lines[0].Quantity != 2 {
		t.Errorf("line mismatch: %+v", got.Lines[0])
	}
	if got.Lines[1].Name != "Mouse Logitech" || got.Lines[1].Subtotal != 76.50 {
		t.Errorf("line mismatch: %+v", got.Lines[1])
	}
}

func TestSaveOrder_DuplicateID(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	o := &cart.Order{ID: "ord-1", CreatedAt: time.Now(), Total: 1.0}
	if err := r.SaveOrder(ctx, o); err != nil {
		t.Fatalf("SaveOrder: %v", err)
	}
	if err := r.SaveOrder(ctx, o); err == nil {
		t.Error("expected primary-key violation on duplicate id")
	}
}

package cart

import "time"

// Order es una compra confirmada: instantánea de las líneas del carrito al
// momento del checkout. Las líneas copian precio y nombre para que el recibo
// no cambie si el catálogo cambia después.
type Order struct {
	ID        string
	CreatedAt time.Time
	Lines     []OrderLine
	Total     float64
}

type OrderLine struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

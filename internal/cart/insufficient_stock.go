package cart

import "fmt"

// InsufficientStockError se produce cuando la cantidad solicitada (o la
// acumulada en el carrito) supera el stock declarado del producto. Es un
// resultado de dominio, no un error de programación: quien llama lo muestra
// y decide reintentar con menos.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %q, solicitado: %d, disponible: %d",
		e.ProductID, e.Requested, e.Available)
}

package model

import "fmt"

// CartItem es una línea del carrito: referencia compartida al producto del
// catálogo (no una copia) más la cantidad seleccionada.
type CartItem struct {
	product  *Product
	quantity int
}

func NewCartItem(product *Product, quantity int) (*CartItem, error) {
	if product == nil {
		return nil, fmt.Errorf("%w: el producto no puede ser nulo", ErrInvalidArgument)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a cero", ErrInvalidArgument)
	}
	return &CartItem{product: product, quantity: quantity}, nil
}

func (it *CartItem) Product() *Product { return it.product }
func (it *CartItem) Quantity() int     { return it.quantity }

// Subtotal es precio × cantidad.
func (it *CartItem) Subtotal() float64 {
	return it.product.Price() * float64(it.quantity)
}

func (it *CartItem) IncreaseQuantity(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: la cantidad a aumentar debe ser mayor a cero", ErrInvalidArgument)
	}
	it.quantity += amount
	return nil
}

// DecreaseQuantity reduce la cantidad. Llegar exactamente a 0 está permitido
// aquí; retirar la línea del carrito es responsabilidad del carrito.
func (it *CartItem) DecreaseQuantity(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: la cantidad a reducir debe ser mayor a cero", ErrInvalidArgument)
	}
	if it.quantity-amount < 0 {
		return fmt.Errorf("%w: la cantidad no puede ser negativa", ErrInvalidArgument)
	}
	it.quantity -= amount
	return nil
}

func (it *CartItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor a cero", ErrInvalidArgument)
	}
	it.quantity = quantity
	return nil
}

func (it *CartItem) String() string {
	return fmt.Sprintf("CartItem{product=%q, quantity=%d, subtotal=%.2f}",
		it.product.Name(), it.quantity, it.Subtotal())
}

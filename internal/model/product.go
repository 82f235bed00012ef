package model

import (
	"fmt"
	"strings"
)

// Product es una entrada del catálogo: identidad inmutable, precio inmutable
// y un contador de stock mutable. Dos productos son iguales si sus ids lo son.
type Product struct {
	id    string
	name  string
	price float64
	stock int
}

func NewProduct(id, name string, price float64, stock int) (*Product, error) {
	if price < 0 {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", ErrInvalidArgument)
	}
	if stock < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", ErrInvalidArgument)
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: el ID del producto no puede estar vacío", ErrInvalidArgument)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: el nombre del producto no puede estar vacío", ErrInvalidArgument)
	}
	return &Product{id: id, name: name, price: price, stock: stock}, nil
}

func (p *Product) ID() string     { return p.id }
func (p *Product) Name() string   { return p.name }
func (p *Product) Price() float64 { return p.price }
func (p *Product) Stock() int     { return p.stock }

// HasStock responde si la cantidad solicitada cabe en el stock actual.
// No tiene efectos secundarios.
func (p *Product) HasStock(quantity int) bool {
	return p.stock >= quantity
}

// ReduceStock descuenta quantity del stock.
func (p *Product) ReduceStock(quantity int) error {
	if quantity > p.stock {
		return fmt.Errorf("%w: stock insuficiente, disponible: %d, solicitado: %d",
			ErrInvalidArgument, p.stock, quantity)
	}
	p.stock -= quantity
	return nil
}

// AddStock aumenta el stock (reabastecimiento).
func (p *Product) AddStock(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: la cantidad a añadir no puede ser negativa", ErrInvalidArgument)
	}
	p.stock += quantity
	return nil
}

func (p *Product) String() string {
	return fmt.Sprintf("Product{id=%q, name=%q, price=%.2f, stock=%d}",
		p.id, p.name, p.price, p.stock)
}

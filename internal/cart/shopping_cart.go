package cart

import (
	"fmt"

	"github.com/ahinestrog/techstore/internal/model"
)

// ShoppingCart es la colección ordenada de líneas del carrito, única por
// producto. Las mutaciones validan stock contra el producto del catálogo,
// pero nunca lo descuentan: el stock es un techo, no una reserva.
type ShoppingCart struct {
	items []*model.CartItem
}

func NewShoppingCart() *ShoppingCart {
	return &ShoppingCart{items: []*model.CartItem{}}
}

// AddProduct agrega un producto al carrito. Si ya existe una línea para el
// producto, aumenta su cantidad; el chequeo de stock se repite contra la
// cantidad acumulada para que varias adiciones pequeñas no superen el techo.
func (c *ShoppingCart) AddProduct(product *model.Product, quantity int) error {
	if product == nil {
		return fmt.Errorf("%w: el producto no puede ser nulo", model.ErrInvalidArgument)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor a cero", model.ErrInvalidArgument)
	}

	if !product.HasStock(quantity) {
		return &InsufficientStockError{
			ProductID: product.ID(),
			Requested: quantity,
			Available: product.Stock(),
		}
	}

	if existing := c.findByID(product.ID()); existing != nil {
		newQuantity := existing.Quantity() + quantity
		if !product.HasStock(newQuantity) {
			return &InsufficientStockError{
				ProductID: product.ID(),
				Requested: newQuantity,
				Available: product.Stock(),
			}
		}
		return existing.IncreaseQuantity(quantity)
	}

	item, err := model.NewCartItem(product, quantity)
	if err != nil {
		return err
	}
	c.items = append(c.items, item)
	return nil
}

// RemoveProduct elimina la línea del producto indicado. Devuelve false si el
// producto no estaba en el carrito; la ausencia es un resultado normal.
func (c *ShoppingCart) RemoveProduct(productID string) bool {
	for i, it := range c.items {
		if it.Product().ID() == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity fija la cantidad de una línea (valor absoluto, no delta).
// Una cantidad <= 0 equivale a eliminar la línea.
func (c *ShoppingCart) UpdateQuantity(productID string, newQuantity int) error {
	item := c.findByID(productID)
	if item == nil {
		return fmt.Errorf("%w: producto no encontrado en el carrito", model.ErrNotFound)
	}

	if newQuantity <= 0 {
		c.RemoveProduct(productID)
		return nil
	}

	product := item.Product()
	if !product.HasStock(newQuantity) {
		return &InsufficientStockError{
			ProductID: productID,
			Requested: newQuantity,
			Available: product.Stock(),
		}
	}
	return item.SetQuantity(newQuantity)
}

// Total suma los subtotales de todas las líneas, sin descuentos.
func (c *ShoppingCart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return total
}

// ItemCount es el número de líneas (productos distintos).
func (c *ShoppingCart) ItemCount() int {
	return len(c.items)
}

// TotalProducts es la suma de cantidades de todas las líneas.
func (c *ShoppingCart) TotalProducts() int {
	var total int
	for _, it := range c.items {
		total += it.Quantity()
	}
	return total
}

func (c *ShoppingCart) Clear() {
	c.items = c.items[:0]
}

func (c *ShoppingCart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items devuelve una copia de la lista de líneas; mutar el slice devuelto no
// afecta al carrito.
func (c *ShoppingCart) Items() []*model.CartItem {
	out := make([]*model.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *ShoppingCart) findByID(productID string) *model.CartItem {
	for _, it := range c.items {
		if it.Product().ID() == productID {
			return it
		}
	}
	return nil
}

package cart

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ahinestrog/techstore/internal/model"
)

// OrderHistory guarda las compras confirmadas de la sesión.
type OrderHistory interface {
	SaveOrder(ctx context.Context, o *Order) error
	ListOrders(ctx context.Context) ([]*Order, error)
}

// Service gestiona el catálogo y el carrito de forma centralizada: resuelve
// ids contra el catálogo y delega las mutaciones al carrito.
type Service struct {
	catalog   map[string]*model.Product
	cart      *ShoppingCart
	discounts *DiscountService
	history   OrderHistory
}

// NewService construye el servicio con el catálogo inicial de la tienda.
// history puede ser nil; en ese caso el checkout no deja registro.
func NewService(history OrderHistory) (*Service, error) {
	s := &Service{
		catalog:   map[string]*model.Product{},
		cart:      NewShoppingCart(),
		discounts: NewDiscountService(),
		history:   history,
	}
	if err := s.seedCatalog(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) seedCatalog() error {
	seed := []struct {
		id, name string
		price    float64
		stock    int
	}{
		{"P001", "Laptop Dell", 1200.00, 10},
		{"P002", "Mouse Logitech", 25.50, 20},
		{"P003", "Teclado Mecánico", 75.00, 15},
		{"P004", `Monitor LG 27"`, 350.00, 8},
	}
	for _, v := range seed {
		p, err := model.NewProduct(v.id, v.name, v.price, v.stock)
		if err != nil {
			return err
		}
		s.catalog[p.ID()] = p
	}
	return nil
}

// Products devuelve el catálogo ordenado por id.
func (s *Service) Products() []*model.Product {
	out := make([]*model.Product, 0, len(s.catalog))
	for _, p := range s.catalog {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Product resuelve un producto por id.
func (s *Service) Product(productID string) (*model.Product, error) {
	p, ok := s.catalog[productID]
	if !ok {
		return nil, fmt.Errorf("%w: producto %q no existe en el catálogo", model.ErrNotFound, productID)
	}
	return p, nil
}

// AddToCart resuelve el id contra el catálogo y delega en el carrito.
func (s *Service) AddToCart(productID string, quantity int) error {
	p, err := s.Product(productID)
	if err != nil {
		return err
	}
	return s.cart.AddProduct(p, quantity)
}

func (s *Service) RemoveFromCart(productID string) bool {
	return s.cart.RemoveProduct(productID)
}

func (s *Service) UpdateCartQuantity(productID string, newQuantity int) error {
	return s.cart.UpdateQuantity(productID, newQuantity)
}

func (s *Service) CartTotal() float64 {
	return s.cart.Total()
}

func (s *Service) CartItemCount() int {
	return s.cart.ItemCount()
}

func (s *Service) ClearCart() {
	s.cart.Clear()
}

// ApplyDiscount aplica un cupón sobre el total actual del carrito.
func (s *Service) ApplyDiscount(couponCode string) (float64, error) {
	return s.discounts.ApplyCoupon(s.cart.Total(), couponCode)
}

func (s *Service) Cart() *ShoppingCart { return s.cart }

func (s *Service) Discounts() *DiscountService { return s.discounts }

// CartSummary es el estado del carrito en una línea, para mostrar.
func (s *Service) CartSummary() string {
	if s.cart.IsEmpty() {
		return "Carrito vacío"
	}
	return fmt.Sprintf("Items en carrito: %d\nTotal: $%.2f", s.cart.ItemCount(), s.cart.Total())
}

// Checkout confirma la compra: descuenta el stock de cada producto, registra
// la orden en el historial y vacía el carrito. Hasta este punto el stock era
// solo un techo verificado; aquí se consume de verdad.
func (s *Service) Checkout(ctx context.Context) (*Order, error) {
	if s.cart.IsEmpty() {
		return nil, fmt.Errorf("%w: el carrito está vacío", model.ErrInvalidArgument)
	}

	items := s.cart.Items()

	// Validar todo antes de aplicar, como una reserva.
	for _, it := range items {
		if !it.Product().HasStock(it.Quantity()) {
			return nil, &InsufficientStockError{
				ProductID: it.Product().ID(),
				Requested: it.Quantity(),
				Available: it.Product().Stock(),
			}
		}
	}

	order := &Order{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Total:     s.cart.Total(),
	}
	for _, it := range items {
		order.Lines = append(order.Lines, OrderLine{
			ProductID: it.Product().ID(),
			Name:      it.Product().Name(),
			Quantity:  it.Quantity(),
			UnitPrice: it.Product().Price(),
			Subtotal:  it.Subtotal(),
		})
	}

	for _, it := range items {
		if err := it.Product().ReduceStock(it.Quantity()); err != nil {
			return nil, err
		}
	}

	if s.history != nil {
		if err := s.history.SaveOrder(ctx, order); err != nil {
			// Devolver el stock consumido; la compra no quedó registrada.
			for _, it := range items {
				_ = it.Product().AddStock(it.Quantity())
			}
			return nil, err
		}
	}

	s.cart.Clear()
	return order, nil
}

// Orders lista las compras confirmadas de la sesión.
func (s *Service) Orders(ctx context.Context) ([]*Order, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.ListOrders(ctx)
}

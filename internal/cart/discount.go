package cart

import (
	"fmt"
	"strings"

	"github.com/ahinestrog/techstore/internal/model"
)

// DiscountService calcula totales ajustados. Todas las operaciones son puras:
// no tocan ni el carrito ni el catálogo.
type DiscountService struct {
	coupons map[string]func(total float64) (float64, error)
}

func NewDiscountService() *DiscountService {
	s := &DiscountService{}
	// Cupones fijos de la tienda, indexados en mayúsculas.
	s.coupons = map[string]func(float64) (float64, error){
		"SAVE10": func(total float64) (float64, error) { return s.ApplyPercentageDiscount(total, 10) },
		"SAVE20": func(total float64) (float64, error) { return s.ApplyPercentageDiscount(total, 20) },
		"FLAT50": func(total float64) (float64, error) { return s.ApplyFixedDiscount(total, 50) },
	}
	return s
}

// ApplyPercentageDiscount descuenta un porcentaje en [0,100] del total.
func (s *DiscountService) ApplyPercentageDiscount(total, percent float64) (float64, error) {
	if percent < 0 || percent > 100 {
		return 0, fmt.Errorf("%w: el porcentaje de descuento debe estar entre 0 y 100", model.ErrInvalidArgument)
	}
	if total < 0 {
		return 0, fmt.Errorf("%w: el total no puede ser negativo", model.ErrInvalidArgument)
	}
	return total - total*(percent/100), nil
}

// ApplyFixedDiscount descuenta un monto fijo; el resultado se recorta en 0.
func (s *DiscountService) ApplyFixedDiscount(total, amount float64) (float64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: el monto de descuento no puede ser negativo", model.ErrInvalidArgument)
	}
	if total < 0 {
		return 0, fmt.Errorf("%w: el total no puede ser negativo", model.ErrInvalidArgument)
	}
	result := total - amount
	if result < 0 {
		result = 0
	}
	return result, nil
}

// ApplyVolumeDiscount aplica el descuento escalonado por volumen de compra:
// >= 1000 -> 15%, >= 500 -> 10%, >= 100 -> 5%, resto sin descuento.
// Los límites son inclusivos.
func (s *DiscountService) ApplyVolumeDiscount(total float64) (float64, error) {
	if total < 0 {
		return 0, fmt.Errorf("%w: el total no puede ser negativo", model.ErrInvalidArgument)
	}

	var percent float64
	switch {
	case total >= 1000:
		percent = 15
	case total >= 500:
		percent = 10
	case total >= 100:
		percent = 5
	}
	return s.ApplyPercentageDiscount(total, percent)
}

// ApplyCoupon aplica un cupón por código, sin distinguir mayúsculas.
func (s *DiscountService) ApplyCoupon(total float64, code string) (float64, error) {
	if total < 0 {
		return 0, fmt.Errorf("%w: el total no puede ser negativo", model.ErrInvalidArgument)
	}
	if strings.TrimSpace(code) == "" {
		return 0, fmt.Errorf("%w: el código de cupón no puede estar vacío", model.ErrInvalidArgument)
	}

	apply, ok := s.coupons[strings.ToUpper(code)]
	if !ok {
		return 0, fmt.Errorf("%w: cupón inválido: %s", model.ErrInvalidArgument, code)
	}
	return apply(total)
}

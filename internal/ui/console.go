// Controlador de la interfaz de consola: coordina vistas, entrada y servicio.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ahinestrog/techstore/internal/cart"
)

type ConsoleUI struct {
	service     *cart.Service
	menuView    *MenuView
	catalogView *CatalogView
	cartView    *CartView
	input       *InputReader
	out         io.Writer
}

func NewConsoleUI(service *cart.Service, in io.Reader, out io.Writer) *ConsoleUI {
	return &ConsoleUI{
		service:     service,
		menuView:    NewMenuView(out),
		catalogView: NewCatalogView(out),
		cartView:    NewCartView(out),
		input:       NewInputReader(in, out),
		out:         out,
	}
}

// Run ejecuta el bucle principal hasta que el usuario elige salir.
func (u *ConsoleUI) Run(ctx context.Context) {
	u.menuView.ShowWelcome()

	for {
		u.menuView.ShowMainMenu()
		option := u.input.ReadInt("Seleccione una opción: ")
		if u.input.EOF() {
			u.menuView.ShowGoodbye()
			return
		}

		switch option {
		case 1:
			u.showCatalog()
		case 2:
			u.addProductToCart()
		case 3:
			u.viewCart()
		case 4:
			u.updateQuantity()
		case 5:
			u.removeProduct()
		case 6:
			u.applyDiscount()
		case 7:
			u.checkout(ctx)
		case 8:
			u.clearCart()
		case 9:
			u.showOrders(ctx)
		case 10:
			u.menuView.ShowGoodbye()
			return
		default:
			u.menuView.ShowError("Opción inválida. Intente nuevamente.")
		}
	}
}

func (u *ConsoleUI) showCatalog() {
	u.catalogView.DisplayCatalog(u.service.Products())
}

func (u *ConsoleUI) addProductToCart() {
	fmt.Fprintln(u.out, "\nAGREGAR PRODUCTO AL CARRITO")

	productID := strings.ToUpper(u.input.ReadString("Ingrese el ID del producto: "))
	product, err := u.service.Product(productID)
	if err != nil {
		u.menuView.ShowError("Producto no encontrado.")
		return
	}

	u.catalogView.DisplayProductDetails(product)
	quantity := u.input.ReadInt("Ingrese la cantidad: ")

	if err := u.service.AddToCart(productID, quantity); err != nil {
		u.menuView.ShowError(err.Error())
		return
	}
	u.menuView.ShowSuccess("Producto agregado exitosamente.")
}

func (u *ConsoleUI) viewCart() {
	c := u.service.Cart()
	u.cartView.DisplayCart(c.Items(), c.ItemCount(), c.TotalProducts(), c.Total())
}

func (u *ConsoleUI) updateQuantity() {
	if u.service.Cart().IsEmpty() {
		u.menuView.ShowError("El carrito está vacío.")
		return
	}
	u.viewCart()
	fmt.Fprintln(u.out, "ACTUALIZAR CANTIDAD")

	productID := strings.ToUpper(u.input.ReadString("Ingrese el ID del producto: "))
	newQuantity := u.input.ReadInt("Ingrese la nueva cantidad (0 para eliminar): ")

	if err := u.service.UpdateCartQuantity(productID, newQuantity); err != nil {
		u.menuView.ShowError(err.Error())
		return
	}
	u.menuView.ShowSuccess("Cantidad actualizada exitosamente.")
}

func (u *ConsoleUI) removeProduct() {
	if u.service.Cart().IsEmpty() {
		u.menuView.ShowError("El carrito está vacío.")
		return
	}
	u.viewCart()
	fmt.Fprintln(u.out, "REMOVER PRODUCTO")

	productID := strings.ToUpper(u.input.ReadString("Ingrese el ID del producto a remover: "))

	if u.service.RemoveFromCart(productID) {
		u.menuView.ShowSuccess("Producto removido exitosamente.")
	} else {
		u.menuView.ShowError("Producto no encontrado en el carrito.")
	}
}

func (u *ConsoleUI) applyDiscount() {
	if u.service.Cart().IsEmpty() {
		u.menuView.ShowError("El carrito está vacío.")
		return
	}

	originalTotal := u.service.CartTotal()
	u.menuView.ShowDiscountMenu(originalTotal)

	discounts := u.service.Discounts()
	option := u.input.ReadInt("Seleccione tipo de descuento: ")

	var finalTotal float64
	var err error
	switch option {
	case 1:
		percent := u.input.ReadFloat("Ingrese el porcentaje (0-100): ")
		finalTotal, err = discounts.ApplyPercentageDiscount(originalTotal, percent)
	case 2:
		amount := u.input.ReadFloat("Ingrese el monto de descuento: ")
		finalTotal, err = discounts.ApplyFixedDiscount(originalTotal, amount)
	case 3:
		finalTotal, err = discounts.ApplyVolumeDiscount(originalTotal)
	case 4:
		coupon := u.input.ReadString("Ingrese el código del cupón (SAVE10, SAVE20, FLAT50): ")
		finalTotal, err = discounts.ApplyCoupon(originalTotal, coupon)
	default:
		u.menuView.ShowError("Opción inválida.")
		return
	}

	if err != nil {
		u.menuView.ShowError(err.Error())
		return
	}
	if discount := originalTotal - finalTotal; discount > 0 {
		u.cartView.DisplayDiscount(originalTotal, discount, finalTotal)
	}
}

func (u *ConsoleUI) checkout(ctx context.Context) {
	if u.service.Cart().IsEmpty() {
		u.menuView.ShowError("El carrito está vacío. No hay nada que comprar.")
		return
	}

	fmt.Fprintln(u.out, "\nFINALIZAR COMPRA")
	u.viewCart()

	if !u.input.ReadConfirmation("¿Confirmar compra?") {
		u.menuView.ShowInfo("Compra cancelada.")
		return
	}

	order, err := u.service.Checkout(ctx)
	if err != nil {
		var stockErr *cart.InsufficientStockError
		if errors.As(err, &stockErr) {
			u.menuView.ShowError(stockErr.Error())
		} else {
			u.menuView.ShowError("No se pudo completar la compra: " + err.Error())
		}
		return
	}

	fmt.Fprintf(u.out, "\n¡Compra realizada exitosamente! Orden %s\n", order.ID)
	fmt.Fprintf(u.out, "Total pagado: %s\n", money(order.Total))
	fmt.Fprintln(u.out, "Gracias por su compra.")
	fmt.Fprintln(u.out)
}

func (u *ConsoleUI) clearCart() {
	if u.service.Cart().IsEmpty() {
		u.menuView.ShowError("El carrito ya está vacío.")
		return
	}
	if u.input.ReadConfirmation("¿Está seguro de vaciar el carrito?") {
		u.service.ClearCart()
		u.menuView.ShowSuccess("Carrito vaciado exitosamente.")
	} else {
		u.menuView.ShowInfo("Operación cancelada.")
	}
}

func (u *ConsoleUI) showOrders(ctx context.Context) {
	orders, err := u.service.Orders(ctx)
	if err != nil {
		u.menuView.ShowError("No se pudo leer el historial: " + err.Error())
		return
	}
	u.cartView.DisplayOrders(orders)
}

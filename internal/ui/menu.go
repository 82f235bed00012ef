package ui

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// MenuView imprime los menús y mensajes de estado de la aplicación.
type MenuView struct {
	out io.Writer
}

func NewMenuView(out io.Writer) *MenuView {
	return &MenuView{out: out}
}

func (v *MenuView) ShowWelcome() {
	fmt.Fprintln(v.out, "=========================================")
	fmt.Fprintln(v.out, "   SISTEMA DE CARRITO DE COMPRAS")
	fmt.Fprintln(v.out, "   ¡Bienvenido a TechStore!")
	fmt.Fprintln(v.out, "=========================================")
	fmt.Fprintln(v.out)
}

func (v *MenuView) ShowMainMenu() {
	fmt.Fprintln(v.out, "----------- MENÚ PRINCIPAL -----------")
	fmt.Fprintln(v.out, " 1. Ver catálogo de productos")
	fmt.Fprintln(v.out, " 2. Agregar producto al carrito")
	fmt.Fprintln(v.out, " 3. Ver carrito")
	fmt.Fprintln(v.out, " 4. Actualizar cantidad")
	fmt.Fprintln(v.out, " 5. Remover producto")
	fmt.Fprintln(v.out, " 6. Aplicar descuento")
	fmt.Fprintln(v.out, " 7. Finalizar compra")
	fmt.Fprintln(v.out, " 8. Vaciar carrito")
	fmt.Fprintln(v.out, " 9. Historial de compras")
	fmt.Fprintln(v.out, "10. Salir")
	fmt.Fprintln(v.out, "--------------------------------------")
}

func (v *MenuView) ShowDiscountMenu(currentTotal float64) {
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, "APLICAR DESCUENTO")
	fmt.Fprintf(v.out, "Total actual: $%s\n", humanize.CommafWithDigits(currentTotal, 2))
	fmt.Fprintln(v.out, " 1. Descuento por porcentaje")
	fmt.Fprintln(v.out, " 2. Descuento fijo")
	fmt.Fprintln(v.out, " 3. Descuento por volumen (automático)")
	fmt.Fprintln(v.out, " 4. Aplicar cupón")
}

func (v *MenuView) ShowSuccess(message string) {
	fmt.Fprintf(v.out, "OK: %s\n\n", message)
}

func (v *MenuView) ShowError(message string) {
	fmt.Fprintf(v.out, "ERROR: %s\n\n", message)
}

func (v *MenuView) ShowInfo(message string) {
	fmt.Fprintf(v.out, "%s\n\n", message)
}

func (v *MenuView) ShowGoodbye() {
	fmt.Fprintln(v.out, "\n¡Gracias por usar nuestro sistema!")
}

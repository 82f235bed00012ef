package ui

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/ahinestrog/techstore/internal/cart"
	"github.com/ahinestrog/techstore/internal/model"
)

func money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

// CatalogView muestra el catálogo y los detalles de producto.
type CatalogView struct {
	out io.Writer
}

func NewCatalogView(out io.Writer) *CatalogView {
	return &CatalogView{out: out}
}

func (v *CatalogView) DisplayCatalog(products []*model.Product) {
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, "CATÁLOGO DE PRODUCTOS")
	fmt.Fprintf(v.out, "%-6s %-22s %12s %8s\n", "ID", "Nombre", "Precio", "Stock")
	for _, p := range products {
		fmt.Fprintf(v.out, "%-6s %-22s %12s %8d\n", p.ID(), p.Name(), money(p.Price()), p.Stock())
	}
	fmt.Fprintln(v.out)
}

func (v *CatalogView) DisplayProductDetails(p *model.Product) {
	fmt.Fprintf(v.out, "%s - %s (stock: %d)\n", p.ID(), p.Name(), p.Stock())
	fmt.Fprintf(v.out, "Precio unitario: %s\n", money(p.Price()))
}

// CartView muestra el contenido del carrito, descuentos y recibos.
type CartView struct {
	out io.Writer
}

func NewCartView(out io.Writer) *CartView {
	return &CartView{out: out}
}

func (v *CartView) DisplayCart(items []*model.CartItem, itemCount, totalProducts int, total float64) {
	fmt.Fprintln(v.out)
	if len(items) == 0 {
		fmt.Fprintln(v.out, "El carrito está vacío.")
		fmt.Fprintln(v.out)
		return
	}
	fmt.Fprintln(v.out, "CARRITO DE COMPRAS")
	fmt.Fprintf(v.out, "%-6s %-22s %8s %12s %12s\n", "ID", "Producto", "Cant.", "Precio", "Subtotal")
	for _, it := range items {
		p := it.Product()
		fmt.Fprintf(v.out, "%-6s %-22s %8d %12s %12s\n",
			p.ID(), p.Name(), it.Quantity(), money(p.Price()), money(it.Subtotal()))
	}
	fmt.Fprintf(v.out, "Productos distintos: %d | Unidades: %d\n", itemCount, totalProducts)
	fmt.Fprintf(v.out, "TOTAL: %s\n\n", money(total))
}

func (v *CartView) DisplayDiscount(originalTotal, discount, finalTotal float64) {
	fmt.Fprintln(v.out)
	fmt.Fprintf(v.out, "Total original:  %s\n", money(originalTotal))
	fmt.Fprintf(v.out, "Descuento:       -%s\n", money(discount))
	fmt.Fprintf(v.out, "Total a pagar:   %s\n\n", money(finalTotal))
}

func (v *CartView) DisplayOrders(orders []*cart.Order) {
	fmt.Fprintln(v.out)
	if len(orders) == 0 {
		fmt.Fprintln(v.out, "Aún no hay compras en esta sesión.")
		fmt.Fprintln(v.out)
		return
	}
	fmt.Fprintln(v.out, "HISTORIAL DE COMPRAS")
	for _, o := range orders {
		fmt.Fprintf(v.out, "Orden %s  (%s)  total %s\n",
			o.ID, o.CreatedAt.Format("2006-01-02 15:04:05"), money(o.Total))
		for _, l := range o.Lines {
			fmt.Fprintf(v.out, "  %-6s %-22s x%-4d %s\n", l.ProductID, l.Name, l.Quantity, money(l.Subtotal))
		}
	}
	fmt.Fprintln(v.out)
}

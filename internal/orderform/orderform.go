// internal/orderform/orderform.go
package orderform

import (
	"github.com/shopspring/decimal"

	"github.com/atelier-gestor/atelier/internal/format"
	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/orderdraft"
)

// URLResolver turns a stored artwork path into a link.
type URLResolver interface {
	ResolveURL(path string) string
}

type Row struct {
	ProductID   uint
	ProductName string
	Quantity    int
	UnitPrice   string
	LineTotal   string
	Notes       string
	// ArtLink is a preview handle for pending artwork, else the stored file URL
	ArtLink    string
	ArtPending bool
}

// View is everything the order form renders below the header fields.
type View struct {
	Rows          []Row
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	SubtotalText  string
	DiscountText  string
	TotalText     string
	Empty         bool
	DiscountError string
	CanSubmit     bool
}

// Build computes the form view from the current lines and the discount as
// typed by the user.
func Build(lines []orderdraft.Line, discountInput string, resolver URLResolver, lang string) View {
	view := View{
		Rows:  make([]Row, 0, len(lines)),
		Empty: len(lines) == 0,
	}

	for _, line := range lines {
		lineTotal := line.Subtotal()
		view.Subtotal = view.Subtotal.Add(lineTotal)
		view.Rows = append(view.Rows, newRow(line, lineTotal, resolver))
	}

	discount, err := format.ParseNumber(discountInput)
	switch {
	case err != nil:
		view.DiscountError = i18n.T(lang, i18n.KeyUIInvalidNumber, discountInput)
	default:
		view.Discount = discount
		// An empty order is already flagged by Empty
		check := models.ValidateTotal
		if view.Empty {
			check = models.ValidateDiscount
		}
		switch check(view.Subtotal, discount) {
		case models.ErrNegativeDiscount:
			view.DiscountError = i18n.T(lang, i18n.KeyOrderDiscountNegative)
		case models.ErrDiscountExceedsSubtotal:
			view.DiscountError = i18n.T(lang, i18n.KeyUIDiscountTooHigh)
		case models.ErrTotalNotPositive:
			view.DiscountError = i18n.T(lang, i18n.KeyUITotalNotPositive)
		}
	}

	view.Total = view.Subtotal
	if view.DiscountError == "" {
		view.Total = view.Subtotal.Sub(view.Discount)
	}

	view.SubtotalText = format.Currency(view.Subtotal)
	view.DiscountText = format.Currency(view.Discount)
	view.TotalText = format.Currency(view.Total)
	view.CanSubmit = !view.Empty && view.DiscountError == ""
	return view
}

func newRow(line orderdraft.Line, lineTotal decimal.Decimal, resolver URLResolver) Row {
	row := Row{
		ProductID:   line.ProductID,
		ProductName: line.ProductName,
		Quantity:    line.Quantity,
		UnitPrice:   format.Currency(line.UnitPrice),
		LineTotal:   format.Currency(lineTotal),
	}
	if line.Notes != nil {
		row.Notes = *line.Notes
	}

	switch {
	case line.Preview != "":
		row.ArtLink = line.Preview
		row.ArtPending = true
	case line.ArtPath != nil && *line.ArtPath != "":
		row.ArtLink = *line.ArtPath
		if resolver != nil {
			row.ArtLink = resolver.ResolveURL(*line.ArtPath)
		}
	}
	return row
}

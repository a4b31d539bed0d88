// internal/orderform/orderform_test.go
package orderform

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-gestor/atelier/internal/apiclient"
	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
	"github.com/atelier-gestor/atelier/internal/orderdraft"
)

func line(productID uint, qty int, price string) orderdraft.Line {
	return orderdraft.Line{OrderItem: models.OrderItem{
		ProductID:   productID,
		ProductName: "Produto",
		Quantity:    qty,
		UnitPrice:   decimal.RequireFromString(price),
	}}
}

func TestBuildTotals(t *testing.T) {
	require.NoError(t, i18n.Initialize(i18n.LangPortuguese))

	view := Build([]orderdraft.Line{line(1, 2, "10.5"), line(2, 1, "1000")}, "21", nil, i18n.LangPortuguese)

	assert.True(t, decimal.RequireFromString("1021").Equal(view.Subtotal))
	assert.True(t, decimal.RequireFromString("1000").Equal(view.Total))
	assert.Equal(t, "R$ 1.021,00", view.SubtotalText)
	assert.Equal(t, "R$ 21,00", view.DiscountText)
	assert.Equal(t, "R$ 21,00", view.Rows[0].LineTotal)
	assert.Empty(t, view.DiscountError)
	assert.True(t, view.CanSubmit)
}

func TestDiscountAboveSubtotalDisablesSubmit(t *testing.T) {
	require.NoError(t, i18n.Initialize(i18n.LangPortuguese))

	view := Build([]orderdraft.Line{line(1, 1, "50")}, "50,01", nil, i18n.LangPortuguese)

	assert.Equal(t, "O desconto não pode ser maior que o subtotal.", view.DiscountError)
	assert.False(t, view.CanSubmit)
	assert.True(t, decimal.RequireFromString("50").Equal(view.Total))

	assert.True(t, Build([]orderdraft.Line{line(1, 1, "50")}, "49,99", nil, i18n.LangPortuguese).CanSubmit)
}

func TestTotalMustBePositive(t *testing.T) {
	require.NoError(t, i18n.Initialize(i18n.LangPortuguese))

	view := Build([]orderdraft.Line{line(1, 1, "50")}, "50", nil, i18n.LangPortuguese)
	assert.Equal(t, "O total do pedido deve ser maior que zero.", view.DiscountError)
	assert.False(t, view.CanSubmit)

	view = Build([]orderdraft.Line{line(1, 1, "0")}, "", nil, i18n.LangPortuguese)
	assert.Equal(t, "O total do pedido deve ser maior que zero.", view.DiscountError)
	assert.False(t, view.CanSubmit)

	// An empty order only reports Empty
	view = Build(nil, "", nil, i18n.LangPortuguese)
	assert.Empty(t, view.DiscountError)
}

func TestInvalidDiscount(t *testing.T) {
	require.NoError(t, i18n.Initialize(i18n.LangPortuguese))

	view := Build([]orderdraft.Line{line(1, 1, "50")}, "abc", nil, i18n.LangPortuguese)
	assert.Equal(t, "Valor numérico inválido: abc", view.DiscountError)
	assert.False(t, view.CanSubmit)

	view = Build([]orderdraft.Line{line(1, 1, "50")}, "-1", nil, i18n.LangPortuguese)
	assert.NotEmpty(t, view.DiscountError)
	assert.False(t, view.CanSubmit)
}

func TestEmptyOrderCannotBeSubmitted(t *testing.T) {
	view := Build(nil, "", nil, i18n.LangPortuguese)

	assert.True(t, view.Empty)
	assert.False(t, view.CanSubmit)
	assert.NotNil(t, view.Rows)
	assert.Equal(t, "R$ 0,00", view.TotalText)
}

func TestArtLinks(t *testing.T) {
	stored := "/uploads/artes/arte_pedido_1_produto_2_abc.png"
	notes := "frente"

	withPath := line(2, 1, "5")
	withPath.ArtPath = &stored
	withPath.Notes = &notes

	pending := line(3, 1, "5")
	pending.Preview = "preview:123"

	client := apiclient.NewClient("http://api.local", time.Second)
	view := Build([]orderdraft.Line{withPath, pending, line(4, 1, "5")}, "", client, i18n.LangPortuguese)

	assert.Equal(t, "http://api.local/uploads/artes/arte_pedido_1_produto_2_abc.png", view.Rows[0].ArtLink)
	assert.False(t, view.Rows[0].ArtPending)
	assert.Equal(t, "frente", view.Rows[0].Notes)
	assert.Equal(t, "preview:123", view.Rows[1].ArtLink)
	assert.True(t, view.Rows[1].ArtPending)
	assert.Empty(t, view.Rows[2].ArtLink)
}

// internal/models/order_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }

func TestMergeItemSumsQuantityForSameProduct(t *testing.T) {
	order := &Order{}
	merged := order.MergeItem(OrderItemInput{ProductID: 1, Quantity: 2, Notes: strPtr("gold foil")}, dec("10"), "Caneca")
	assert.False(t, merged)

	newPrice := dec("12.50")
	merged = order.MergeItem(OrderItemInput{ProductID: 1, Quantity: 3, UnitPrice: &newPrice, Notes: strPtr("")}, dec("10"), "Caneca")
	assert.True(t, merged)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, 5, item.Quantity)
	assert.True(t, item.UnitPrice.Equal(dec("12.50")))
	require.NotNil(t, item.Notes)
	assert.Equal(t, "gold foil", *item.Notes)
	assert.True(t, item.LineTotal.Equal(dec("62.50")))
}

func TestMergeItemDefaultsToBasePrice(t *testing.T) {
	order := &Order{BaseModel: BaseModel{ID: 9}}
	order.MergeItem(OrderItemInput{ProductID: 3, Quantity: 1}, dec("7.90"), "Camiseta")

	require.Len(t, order.Items, 1)
	assert.Equal(t, uint(9), order.Items[0].OrderID)
	assert.Equal(t, "Camiseta", order.Items[0].ProductName)
	assert.True(t, order.Items[0].UnitPrice.Equal(dec("7.90")))
}

func TestRecalculate(t *testing.T) {
	order := &Order{
		Discount: dec("5"),
		Items: []OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: dec("10")},
			{ProductID: 2, Quantity: 1, UnitPrice: dec("3.50")},
		},
	}
	require.NoError(t, order.Recalculate())
	assert.True(t, order.Total.Equal(dec("18.50")))

	order.Discount = dec("30")
	assert.ErrorIs(t, order.Recalculate(), ErrDiscountExceedsSubtotal)

	order.Discount = dec("-1")
	assert.ErrorIs(t, order.Recalculate(), ErrNegativeDiscount)
}

func TestValidateTotal(t *testing.T) {
	assert.NoError(t, ValidateTotal(dec("20"), dec("19.99")))
	assert.ErrorIs(t, ValidateTotal(dec("20"), dec("20")), ErrTotalNotPositive)
	assert.ErrorIs(t, ValidateTotal(dec("0"), dec("0")), ErrTotalNotPositive)
	assert.ErrorIs(t, ValidateTotal(dec("20"), dec("21")), ErrDiscountExceedsSubtotal)
	assert.ErrorIs(t, ValidateTotal(dec("20"), dec("-1")), ErrNegativeDiscount)

	// ValidateDiscount alone allows a zero total
	assert.NoError(t, ValidateDiscount(dec("20"), dec("20")))
}

func TestRemoveItem(t *testing.T) {
	order := &Order{Items: []OrderItem{{ProductID: 1}, {ProductID: 2}}}

	removed, ok := order.RemoveItem(1)
	assert.True(t, ok)
	assert.Equal(t, uint(1), removed.ProductID)
	assert.Len(t, order.Items, 1)

	_, ok = order.RemoveItem(42)
	assert.False(t, ok)
}

func TestOrderUpdateApply(t *testing.T) {
	order := &Order{Status: OrderStatusInProduction, Notes: strPtr("old"), Discount: dec("2")}

	var update OrderUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Concluído","observacoes":null}`), &update))
	update.Apply(order)

	assert.Equal(t, OrderStatusCompleted, order.Status)
	assert.Nil(t, order.Notes)
	assert.NotNil(t, order.CompletionDate)
	assert.True(t, order.Discount.Equal(dec("2")), "absent discount is left alone")
}

func TestFieldJSON(t *testing.T) {
	update := ClientUpdate{Name: Some("Ana"), Email: Null[string]()}
	body, err := json.Marshal(update)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nome":"Ana","email":null}`, string(body))

	var decoded ClientUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"telefone":null,"nome":"Bia"}`), &decoded))
	assert.Equal(t, map[string]interface{}{"name": "Bia", "phone": nil}, decoded.Updates())
}

func TestDateJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-09T00:00:00.000Z"`), &d))
	assert.Equal(t, "2024-03-09", d.String())

	body, err := json.Marshal(NewDate(2024, 12, 1))
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-01"`, string(body))

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.IsZero())
}

func TestDashboardStatsAdd(t *testing.T) {
	var stats DashboardStats
	stats.Add(StatusCount{Status: OrderStatusCancelled, Count: 2, Sum: dec("100")})
	stats.Add(StatusCount{Status: OrderStatusInProduction, Count: 3, Sum: dec("60")})
	stats.Add(StatusCount{Status: OrderStatusCompleted, Count: 1, Sum: dec("40")})
	stats.Add(StatusCount{Status: OrderStatusAwaitingArtwork, Count: 4, Sum: dec("80")})

	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(7), stats.Active)
	assert.True(t, stats.Revenue.Equal(dec("100")))
	assert.Equal(t, int64(4), stats.AwaitingArtwork)
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatus("Pronto para Retirada").Valid())
	assert.False(t, OrderStatus("shipped").Valid())
}

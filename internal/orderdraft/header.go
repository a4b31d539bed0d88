// internal/orderdraft/header.go
package orderdraft

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atelier-gestor/atelier/internal/format"
	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
)

// Header is the order form without its items. Blank inputs are nil.
type Header struct {
	ClientID       uint
	OrderDate      *models.Date
	CompletionDate *models.Date
	Status         *models.OrderStatus
	Notes          *string
	Discount       decimal.Decimal
}

// cleanForm maps blank values to nil.
func cleanForm(form url.Values) map[string]*string {
	cleaned := make(map[string]*string, len(form))
	for key := range form {
		value := strings.TrimSpace(form.Get(key))
		if value == "" {
			cleaned[key] = nil
			continue
		}
		cleaned[key] = &value
	}
	return cleaned
}

// ParseHeader reads the header fields of the order form. Errors are
// rejections carrying a message in lang.
func ParseHeader(form url.Values, lang string) (Header, error) {
	fields := cleanForm(form)
	var header Header

	clientID := fields["cliente_id"]
	if clientID == nil {
		return Header{}, reject(lang, i18n.KeyUIClientRequired)
	}
	id, err := strconv.ParseUint(*clientID, 10, 64)
	if err != nil || id == 0 {
		return Header{}, reject(lang, i18n.KeyUIClientRequired)
	}
	header.ClientID = uint(id)

	if header.OrderDate, err = parseDate(fields["data_pedido"]); err != nil {
		return Header{}, reject(lang, i18n.KeyValidationInvalid, "data_pedido")
	}
	if header.CompletionDate, err = parseDate(fields["data_conclusao"]); err != nil {
		return Header{}, reject(lang, i18n.KeyValidationInvalid, "data_conclusao")
	}

	if status := fields["status"]; status != nil {
		s := models.OrderStatus(*status)
		if !s.Valid() {
			return Header{}, reject(lang, i18n.KeyValidationStatus)
		}
		header.Status = &s
	}

	header.Notes = fields["observacoes"]

	if discount := fields["desconto"]; discount != nil {
		value, err := format.ParseNumber(*discount)
		if err != nil {
			return Header{}, reject(lang, i18n.KeyUIInvalidNumber, *discount)
		}
		header.Discount = value
	}

	return header, nil
}

func parseDate(value *string) (*models.Date, error) {
	if value == nil {
		return nil, nil
	}
	date, err := models.ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// create is the body of a new order.
func (h Header) create(items []models.OrderItem) models.OrderCreate {
	req := models.OrderCreate{
		ClientID:       h.ClientID,
		CompletionDate: h.CompletionDate,
		Notes:          h.Notes,
		Discount:       h.Discount,
		Items:          make([]models.OrderItemInput, 0, len(items)),
	}
	if h.OrderDate != nil {
		req.OrderDate = *h.OrderDate
	}
	if h.Status != nil {
		req.Status = *h.Status
	}
	for _, item := range items {
		price := item.UnitPrice
		req.Items = append(req.Items, models.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: &price,
			Notes:     item.Notes,
		})
	}
	return req
}

// update is the PATCH body of a persisted order. Blank dates and notes
// clear the stored value.
func (h Header) update() models.OrderUpdate {
	req := models.OrderUpdate{
		ClientID:       models.Some(h.ClientID),
		CompletionDate: models.FromPtr(h.CompletionDate),
		Notes:          models.FromPtr(h.Notes),
		Discount:       models.Some(h.Discount),
	}
	if h.OrderDate != nil {
		req.OrderDate = models.Some(*h.OrderDate)
	}
	if h.Status != nil {
		req.Status = models.Some(*h.Status)
	}
	return req
}

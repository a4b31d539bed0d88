// internal/pages/forms.go
package pages

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atelier-gestor/atelier/internal/format"
	"github.com/atelier-gestor/atelier/internal/models"
)

// form reads submitted values. Blank values count as null.
type form struct {
	values url.Values
}

func (f form) has(key string) bool {
	_, ok := f.values[key]
	return ok
}

func (f form) ptr(key string) *string {
	value := strings.TrimSpace(f.values.Get(key))
	if value == "" {
		return nil
	}
	return &value
}

func (f form) str(key string) string {
	return strings.TrimSpace(f.values.Get(key))
}

// field is the PATCH value of key: absent when the key was not submitted.
func (f form) field(key string) models.Field[string] {
	if !f.has(key) {
		return models.Field[string]{}
	}
	return models.FromPtr(f.ptr(key))
}

func (f form) date(key string) (*models.Date, error) {
	value := f.ptr(key)
	if value == nil {
		return nil, nil
	}
	date, err := models.ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func (f form) dateField(key string) (models.Field[models.Date], error) {
	if !f.has(key) {
		return models.Field[models.Date]{}, nil
	}
	date, err := f.date(key)
	if err != nil {
		return models.Field[models.Date]{}, err
	}
	return models.FromPtr(date), nil
}

func (f form) decimal(key string) (decimal.Decimal, error) {
	return format.ParseNumber(f.values.Get(key))
}

// phone keeps digits only, the way the API stores it.
func (f form) phone(key string) *string {
	value := f.ptr(key)
	if value == nil {
		return nil
	}
	var b strings.Builder
	for _, r := range *value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return nil
	}
	return &digits
}

func clientCreate(values url.Values) (models.ClientCreate, error) {
	f := form{values}
	birthDate, err := f.date("data_nascimento")
	if err != nil {
		return models.ClientCreate{}, err
	}
	return models.ClientCreate{
		Name:      f.str("nome"),
		Phone:     f.phone("telefone"),
		Email:     f.ptr("email"),
		BirthDate: birthDate,
		Notes:     f.ptr("observacoes"),
	}, nil
}

func clientUpdate(values url.Values) (models.ClientUpdate, error) {
	f := form{values}
	birthDate, err := f.dateField("data_nascimento")
	if err != nil {
		return models.ClientUpdate{}, err
	}
	update := models.ClientUpdate{
		Name:      f.field("nome"),
		Email:     f.field("email"),
		BirthDate: birthDate,
		Notes:     f.field("observacoes"),
	}
	if f.has("telefone") {
		update.Phone = models.FromPtr(f.phone("telefone"))
	}
	return update, nil
}

func productCreate(values url.Values) (models.ProductCreate, error) {
	f := form{values}
	price, err := f.decimal("preco_base")
	if err != nil {
		return models.ProductCreate{}, err
	}
	return models.ProductCreate{
		Name:        f.str("nome"),
		Description: f.ptr("descricao"),
		BasePrice:   price,
		Unit:        f.ptr("unidade_medida"),
	}, nil
}

func productUpdate(values url.Values) (models.ProductUpdate, error) {
	f := form{values}
	update := models.ProductUpdate{
		Name:        f.field("nome"),
		Description: f.field("descricao"),
		Unit:        f.field("unidade_medida"),
	}
	if f.has("preco_base") {
		price, err := f.decimal("preco_base")
		if err != nil {
			return models.ProductUpdate{}, err
		}
		update.BasePrice = models.Some(price)
	}
	return update, nil
}

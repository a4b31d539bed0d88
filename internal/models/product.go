// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name        string          `json:"nome" gorm:"size:255;not null;uniqueIndex"`
	Description *string         `json:"descricao" gorm:"type:text"`
	BasePrice   decimal.Decimal `json:"preco_base" gorm:"type:decimal(10,2);not null;default:0;index"`
	Unit        *string         `json:"unidade_medida" gorm:"size:20;index"`

	// Relationships
	OrderItems []OrderItem `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

type ProductCreate struct {
	Name        string          `json:"nome" validate:"required,max=255"`
	Description *string         `json:"descricao,omitempty"`
	BasePrice   decimal.Decimal `json:"preco_base" validate:"gte=0"`
	Unit        *string         `json:"unidade_medida,omitempty" validate:"omitempty,max=20"`
}

type ProductUpdate struct {
	Name        Field[string]          `json:"nome,omitzero" validate:"omitempty,max=255"`
	Description Field[string]          `json:"descricao,omitzero"`
	BasePrice   Field[decimal.Decimal] `json:"preco_base,omitzero" validate:"omitempty,gte=0"`
	Unit        Field[string]          `json:"unidade_medida,omitzero" validate:"omitempty,max=20"`
}

func (u ProductUpdate) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name.Set && !u.Name.Null {
		updates["name"] = u.Name.Value
	}
	if u.BasePrice.Set && !u.BasePrice.Null {
		updates["base_price"] = u.BasePrice.Value
	}
	setNullable(updates, "description", u.Description)
	setNullable(updates, "unit", u.Unit)
	return updates
}

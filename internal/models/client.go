// internal/models/client.go
package models

type Client struct {
	BaseModel
	Name      string  `json:"nome" gorm:"size:255;not null;index"`
	Phone     *string `json:"telefone" gorm:"size:11"`
	Email     *string `json:"email" gorm:"size:100;uniqueIndex"`
	BirthDate *Date   `json:"data_nascimento" gorm:"type:date"`
	Notes     *string `json:"observacoes" gorm:"type:text"`

	// Relationships
	Orders []Order `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
}

type ClientCreate struct {
	Name      string  `json:"nome" validate:"required,max=255"`
	Phone     *string `json:"telefone,omitempty" validate:"omitempty,max=11,numeric"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	BirthDate *Date   `json:"data_nascimento,omitempty"`
	Notes     *string `json:"observacoes,omitempty"`
}

type ClientUpdate struct {
	Name      Field[string] `json:"nome,omitzero" validate:"omitempty,max=255"`
	Phone     Field[string] `json:"telefone,omitzero" validate:"omitempty,max=11,numeric"`
	Email     Field[string] `json:"email,omitzero" validate:"omitempty,email,max=100"`
	BirthDate Field[Date]   `json:"data_nascimento,omitzero"`
	Notes     Field[string] `json:"observacoes,omitzero"`
}

// Updates lists the columns a PATCH touches.
func (u ClientUpdate) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name.Set && !u.Name.Null {
		updates["name"] = u.Name.Value
	}
	setNullable(updates, "phone", u.Phone)
	setNullable(updates, "email", u.Email)
	setNullable(updates, "birth_date", u.BirthDate)
	setNullable(updates, "notes", u.Notes)
	return updates
}

func setNullable[T any](updates map[string]interface{}, column string, field Field[T]) {
	if !field.Set {
		return
	}
	if field.Null {
		updates[column] = nil
		return
	}
	updates[column] = field.Value
}

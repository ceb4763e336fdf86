package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"multimedia-api/internal/shared/apperr"
	"multimedia-api/internal/shared/utils"
)

// Author là entity được tham chiếu bởi Book/CD/DVD qua field autor
type Author struct {
	ID            uuid.UUID `json:"_id"`
	Nome          string    `json:"nome"`
	Bio           *string   `json:"bio,omitempty"`
	Nacionalidade *string   `json:"nacionalidade,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Validate chạy sau khi trim, trước khi persist
func (a *Author) Validate() error {
	return apperr.Validation(validation.ValidateStruct(a,
		validation.Field(&a.Nome, validation.Required.Error("Nome do autor é obrigatório")),
	))
}

// CreateAuthorRequest - POST /authors
// Field không nhận diện được bị bỏ qua
type CreateAuthorRequest struct {
	Nome          *string `json:"nome"`
	Bio           *string `json:"bio"`
	Nacionalidade *string `json:"nacionalidade"`
}

// UpdateAuthorRequest - PUT/PATCH /authors/:id
// Field nil giữ nguyên giá trị cũ, field có mặt ghi đè
type UpdateAuthorRequest struct {
	Nome          *string `json:"nome"`
	Bio           *string `json:"bio"`
	Nacionalidade *string `json:"nacionalidade"`
}

// ToEntity trims the input; validation happens afterwards on the entity.
func (req *CreateAuthorRequest) ToEntity() *Author {
	a := &Author{
		Bio:           utils.EmptyToNil(req.Bio),
		Nacionalidade: utils.EmptyToNil(req.Nacionalidade),
	}
	if req.Nome != nil {
		a.Nome = *utils.TrimStringPtr(req.Nome)
	}
	return a
}

// ApplyToEntity merges present fields into an existing author.
func (req *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	if req.Nome != nil {
		a.Nome = *utils.TrimStringPtr(req.Nome)
	}
	if req.Bio != nil {
		a.Bio = utils.EmptyToNil(req.Bio)
	}
	if req.Nacionalidade != nil {
		a.Nacionalidade = utils.EmptyToNil(req.Nacionalidade)
	}
}

package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"multimedia-api/internal/shared/apperr"
	"multimedia-api/internal/shared/utils"
)

// CreateItemRequest - POST /{books|cds|dvds}
// Chỉ field của kind tương ứng được dùng, còn lại bị bỏ qua
type CreateItemRequest struct {
	Titulo    *string          `json:"titulo"`
	Categoria *string          `json:"categoria"`
	Genero    *string          `json:"genero"`
	Descricao *string          `json:"descricao"`
	Preco     *decimal.Decimal `json:"preco"`
	Autor     *string          `json:"autor"`
}

// UpdateItemRequest - PUT|PATCH /{books|cds|dvds}/:id
// Field nil giữ nguyên, field có mặt ghi đè
type UpdateItemRequest struct {
	Titulo    *string          `json:"titulo"`
	Categoria *string          `json:"categoria"`
	Genero    *string          `json:"genero"`
	Descricao *string          `json:"descricao"`
	Preco     *decimal.Decimal `json:"preco"`
	Autor     *string          `json:"autor"`
}

func classifier(kind Kind, categoria, genero *string) *string {
	if kind.ClassifierField == "genero" {
		return genero
	}
	return categoria
}

// authorReference chấp nhận mọi dạng uuid.Parse nhận (kể cả chữ hoa),
// giống id trên path; nil UUID coi như thiếu author
func authorReference(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return errors.New(msgAuthorInvalid)
	}
	if id == uuid.Nil {
		return errors.New(msgAuthorRequired)
	}
	return nil
}

func (req *CreateItemRequest) normalize() {
	req.Titulo = utils.TrimStringPtr(req.Titulo)
	req.Autor = utils.TrimStringPtr(req.Autor)
}

// Validate trims then checks every field so all problems are reported at once.
func (req *CreateItemRequest) Validate(kind Kind) error {
	req.normalize()
	return apperr.Validation(validation.ValidateStruct(req,
		validation.Field(&req.Titulo, validation.Required.Error(kind.TitleRequired)),
		validation.Field(&req.Preco, validation.By(nonNegativePrice)),
		validation.Field(&req.Autor,
			validation.Required.Error(msgAuthorRequired),
			validation.By(authorReference),
		),
	))
}

// ToEntity assumes Validate passed.
func (req *CreateItemRequest) ToEntity(kind Kind) *Item {
	it := &Item{
		Kind:          kind,
		Classificacao: utils.EmptyToNil(classifier(kind, req.Categoria, req.Genero)),
		Preco:         req.Preco,
	}
	if req.Titulo != nil {
		it.Titulo = *req.Titulo
	}
	if kind.HasDescription {
		it.Descricao = utils.EmptyToNil(req.Descricao)
	}
	if req.Autor != nil {
		it.AutorID = utils.ParseStringToUUID(*req.Autor)
	}
	return it
}

func (req *UpdateItemRequest) normalize() {
	req.Titulo = utils.TrimStringPtr(req.Titulo)
	req.Autor = utils.TrimStringPtr(req.Autor)
}

// Validate only looks at present fields. A present autor may change the
// reference but never blank it.
func (req *UpdateItemRequest) Validate(kind Kind) error {
	req.normalize()
	return apperr.Validation(validation.ValidateStruct(req,
		validation.Field(&req.Titulo, validation.NilOrNotEmpty.Error(kind.TitleRequired)),
		validation.Field(&req.Preco, validation.By(nonNegativePrice)),
		validation.Field(&req.Autor,
			validation.NilOrNotEmpty.Error(msgAuthorRequired),
			validation.By(authorReference),
		),
	))
}

// ApplyToEntity merges present fields into it. Assumes Validate passed.
func (req *UpdateItemRequest) ApplyToEntity(it *Item) {
	if req.Titulo != nil {
		it.Titulo = *req.Titulo
	}
	if c := classifier(it.Kind, req.Categoria, req.Genero); c != nil {
		it.Classificacao = utils.EmptyToNil(c)
	}
	if it.Kind.HasDescription && req.Descricao != nil {
		it.Descricao = utils.EmptyToNil(req.Descricao)
	}
	if req.Preco != nil {
		it.Preco = req.Preco
	}
	if req.Autor != nil {
		it.AutorID = utils.ParseStringToUUID(*req.Autor)
	}
}

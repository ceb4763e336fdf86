package model

import (
	"encoding/json"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"multimedia-api/internal/shared/apperr"
)

const (
	msgAuthorRequired = "Autor é obrigatório"
	msgPriceNegative  = "Preço não pode ser negativo"
	msgAuthorInvalid  = "Autor deve ser um identificador válido"
)

func init() {
	// preco sai dạng number giống client cũ, không phải string
	decimal.MarshalJSONWithoutQuotes = true
}

// Projection chọn field của author được copy vào item khi resolve reference
type Projection int

const (
	// ProjectionSummary: nome + nacionalidade (list, create, update)
	ProjectionSummary Projection = iota
	// ProjectionDetail: nome + bio + nacionalidade (get by id)
	ProjectionDetail
)

// AuthorRef is the read-time snapshot of the referenced author.
type AuthorRef struct {
	ID            uuid.UUID `json:"_id"`
	Nome          string    `json:"nome"`
	Bio           *string   `json:"bio,omitempty"`
	Nacionalidade *string   `json:"nacionalidade,omitempty"`
}

// Project returns a copy limited to the fields p allows. Nil stays nil.
func (r *AuthorRef) Project(p Projection) *AuthorRef {
	if r == nil {
		return nil
	}
	out := *r
	if p == ProjectionSummary {
		out.Bio = nil
	}
	return &out
}

// Item is a Book, CD or DVD. Autor is nil when the reference dangles.
// The json tags name the fields in validation messages; the wire shape
// comes from MarshalJSON.
type Item struct {
	ID            uuid.UUID        `json:"_id"`
	Kind          Kind             `json:"-"`
	Titulo        string           `json:"titulo"`
	Classificacao *string          `json:"classificacao"`
	Descricao     *string          `json:"descricao"`
	Preco         *decimal.Decimal `json:"preco"`
	AutorID       uuid.UUID        `json:"autor"`
	Autor         *AuthorRef       `json:"-"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type itemJSON struct {
	ID        uuid.UUID        `json:"_id"`
	Titulo    string           `json:"titulo"`
	Categoria *string          `json:"categoria,omitempty"`
	Genero    *string          `json:"genero,omitempty"`
	Descricao *string          `json:"descricao,omitempty"`
	Preco     *decimal.Decimal `json:"preco,omitempty"`
	Autor     *AuthorRef       `json:"autor"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// MarshalJSON names the classifier after the kind (categoria or genero) and
// drops descricao for kinds that do not expose it.
func (it Item) MarshalJSON() ([]byte, error) {
	out := itemJSON{
		ID:        it.ID,
		Titulo:    it.Titulo,
		Preco:     it.Preco,
		Autor:     it.Autor,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
	if it.Kind.ClassifierField == "genero" {
		out.Genero = it.Classificacao
	} else {
		out.Categoria = it.Classificacao
	}
	if it.Kind.HasDescription {
		out.Descricao = it.Descricao
	}
	return json.Marshal(out)
}

// Validate checks the invariants that must hold for every stored item.
func (it *Item) Validate() error {
	return apperr.Validation(validation.ValidateStruct(it,
		validation.Field(&it.Titulo, validation.Required.Error(it.Kind.TitleRequired)),
		validation.Field(&it.Preco, validation.By(nonNegativePrice)),
		validation.Field(&it.AutorID, validation.By(requiredUUID)),
	))
}

func nonNegativePrice(value interface{}) error {
	var d *decimal.Decimal
	switch v := value.(type) {
	case *decimal.Decimal:
		d = v
	case decimal.Decimal:
		d = &v
	}
	if d != nil && d.IsNegative() {
		return errors.New(msgPriceNegative)
	}
	return nil
}

func requiredUUID(value interface{}) error {
	if id, ok := value.(uuid.UUID); ok && id == uuid.Nil {
		return errors.New(msgAuthorRequired)
	}
	return nil
}

package model

// Kind describes one media resource. Book, CD and DVD share every rule and
// differ only in the name of the classifying field and whether descricao is
// exposed.
type Kind struct {
	Name            string // singular label used in messages: "book"
	Resource        string // route segment and table name: "books"
	ClassifierField string // "categoria" or "genero"
	HasDescription  bool
	TitleRequired   string // validation message for a blank titulo
}

var (
	KindBook = Kind{
		Name:            "book",
		Resource:        "books",
		ClassifierField: "categoria",
		HasDescription:  true,
		TitleRequired:   "Título do livro é obrigatório",
	}
	KindCD = Kind{
		Name:            "cd",
		Resource:        "cds",
		ClassifierField: "genero",
		TitleRequired:   "Título do CD é obrigatório",
	}
	KindDVD = Kind{
		Name:            "dvd",
		Resource:        "dvds",
		ClassifierField: "categoria",
		TitleRequired:   "Título do DVD é obrigatório",
	}
)

// Kinds lists every media kind in route registration order.
func Kinds() []Kind {
	return []Kind{KindBook, KindCD, KindDVD}
}

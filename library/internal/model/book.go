package model

import (
	"math"
	"strings"
	"time"
)

type Genre string

const (
	GenreFiction    Genre = "FICTION"
	GenreNonFiction Genre = "NON_FICTION"
	GenreScience    Genre = "SCIENCE"
	GenreHistory    Genre = "HISTORY"
	GenreBiography  Genre = "BIOGRAPHY"
	GenreFantasy    Genre = "FANTASY"
)

func (g Genre) Valid() bool {
	switch g {
	case GenreFiction, GenreNonFiction, GenreScience, GenreHistory, GenreBiography, GenreFantasy:
		return true
	}
	return false
}

// MaxCount is the largest copies or quantity value the integer columns hold.
const MaxCount = math.MaxInt32

type Book struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Author      string    `json:"author" db:"author"`
	Genre       Genre     `json:"genre" db:"genre"`
	ISBN        string    `json:"isbn" db:"isbn"`
	Description string    `json:"description,omitempty" db:"description"`
	Copies      int       `json:"copies" db:"copies"`
	Available   bool      `json:"available" db:"available"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// SetCopies keeps Available in step with Copies.
func (b *Book) SetCopies(n int) {
	b.Copies = n
	b.Available = n > 0
}

// Check reports the first broken invariant of a merged book, or "" if it is valid.
func (b *Book) Check() string {
	switch {
	case b.Title == "":
		return "title is required"
	case b.Author == "":
		return "author is required"
	case b.ISBN == "":
		return "isbn is required"
	case !b.Genre.Valid():
		return "genre is invalid"
	case b.Copies < 0:
		return "copies must be non-negative"
	case b.Copies > MaxCount:
		return "copies is out of range"
	}
	return ""
}

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Genre       Genre  `json:"genre" validate:"required,oneof=FICTION NON_FICTION SCIENCE HISTORY BIOGRAPHY FANTASY"`
	ISBN        string `json:"isbn" validate:"required"`
	Description string `json:"description"`
	Copies      *int   `json:"copies" validate:"required,gte=0,lte=2147483647"`
}

func (r *CreateBookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.ISBN = strings.TrimSpace(r.ISBN)
}

func (r CreateBookRequest) Book() Book {
	b := Book{
		Title:       r.Title,
		Author:      r.Author,
		Genre:       r.Genre,
		ISBN:        r.ISBN,
		Description: r.Description,
	}
	if r.Copies != nil {
		b.SetCopies(*r.Copies)
	}
	return b
}

// UpdateBookRequest is a partial update: nil fields are left untouched.
type UpdateBookRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Author      *string `json:"author" validate:"omitempty,min=1"`
	Genre       *Genre  `json:"genre" validate:"omitempty,oneof=FICTION NON_FICTION SCIENCE HISTORY BIOGRAPHY FANTASY"`
	ISBN        *string `json:"isbn" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Copies      *int    `json:"copies" validate:"omitempty,gte=0,lte=2147483647"`
}

func (r *UpdateBookRequest) Normalize() {
	for _, s := range []*string{r.Title, r.Author, r.ISBN} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

func (r UpdateBookRequest) Empty() bool {
	return r.Title == nil && r.Author == nil && r.Genre == nil &&
		r.ISBN == nil && r.Description == nil && r.Copies == nil
}

// Apply merges the set fields into b. Copies goes through SetCopies.
func (r UpdateBookRequest) Apply(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.Genre != nil {
		b.Genre = *r.Genre
	}
	if r.ISBN != nil {
		b.ISBN = *r.ISBN
	}
	if r.Description != nil {
		b.Description = *r.Description
	}
	if r.Copies != nil {
		b.SetCopies(*r.Copies)
	}
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	DefaultSortBy = "createdAt"
	DefaultLimit  = 10
)

// sortColumns maps the public sort keys to table columns.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"author":    "author",
	"genre":     "genre",
	"isbn":      "isbn",
	"copies":    "copies",
	"available": "available",
}

func SortColumn(field string) (string, bool) {
	c, ok := sortColumns[field]
	return c, ok
}

type ListBooksQuery struct {
	Genre  *Genre
	SortBy string
	Sort   SortDirection
	// Limit of 0 returns every matching book.
	Limit uint64
}

func DefaultListBooksQuery() ListBooksQuery {
	return ListBooksQuery{
		SortBy: DefaultSortBy,
		Sort:   SortAsc,
		Limit:  DefaultLimit,
	}
}

package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Date accepts RFC 3339 timestamps as well as plain YYYY-MM-DD dates.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		if t, err = time.Parse(time.DateOnly, s); err != nil {
			return err
		}
	}
	d.Time = t.UTC()
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}

type CreateBorrowRequest struct {
	Book     string `json:"book"`
	Quantity *int   `json:"quantity" validate:"omitempty,lte=2147483647"`
	DueDate  *Date  `json:"dueDate"`
}

func (r CreateBorrowRequest) Complete() bool {
	return r.Book != "" && r.Quantity != nil && r.DueDate != nil && !r.DueDate.IsZero()
}

type BorrowRecord struct {
	ID        string    `json:"id" db:"id"`
	BookID    string    `json:"book" db:"book_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	DueDate   time.Time `json:"dueDate" db:"due_date"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type BookSummary struct {
	Title string `json:"title" db:"title"`
	ISBN  string `json:"isbn" db:"isbn"`
}

type BorrowSummary struct {
	Book          BookSummary `json:"book"`
	TotalQuantity int         `json:"totalQuantity"`
}

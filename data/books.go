package data

import (
	"github.com/emzola/libraryportal/internal/validator"
)

// BookStatus is the circulation flag of a book record.
type BookStatus string

const (
	StatusAvailable BookStatus = "AVAILABLE"
	StatusBorrowed  BookStatus = "BORROWED"
)

// Book defines a book model. A record stands for every copy of one
// (isbn, title, author) triple; Status is a single flag for the record.
type Book struct {
	ID         int64      `json:"id" db:"id"`
	ISBN       string     `json:"isbn" db:"isbn"`
	Title      string     `json:"title" db:"title"`
	Author     string     `json:"author" db:"author"`
	NoOfCopies int        `json:"noOfCopies" db:"no_of_copies"`
	Status     BookStatus `json:"status" db:"status"`
	Version    int32      `json:"-" db:"version"`
}

// Borrow moves an available book to BORROWED and takes one copy off the shelf.
// It reports false, leaving the book untouched, when the book is not available.
func (b *Book) Borrow() bool {
	if b.Status != StatusAvailable || b.NoOfCopies < 1 {
		return false
	}
	b.Status = StatusBorrowed
	b.NoOfCopies--
	return true
}

// Return moves a borrowed book back to AVAILABLE and puts one copy back.
// It reports false, leaving the book untouched, when the book is not borrowed.
func (b *Book) Return() bool {
	if b.Status != StatusBorrowed {
		return false
	}
	b.Status = StatusAvailable
	b.NoOfCopies++
	return true
}

func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(book.ISBN != "", "isbn", "must be provided")
}

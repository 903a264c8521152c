package data

import "github.com/emzola/libraryportal/internal/validator"

// Borrower defines a library member. Email is unique across borrowers.
type Borrower struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Version int32  `json:"-" db:"version"`
}

func ValidateBorrower(v *validator.Validator, borrower *Borrower) {
	v.Check(borrower.Email != "", "email", "must be provided")
}

// BorrowedBookDetails is the response to a successful borrow. It is built per
// response and never persisted.
type BorrowedBookDetails struct {
	BorrowerID    int64  `json:"borrowerId"`
	BorrowerName  string `json:"borrowerName"`
	BorrowerEmail string `json:"borrowerEmail"`
	BookID        int64  `json:"bookId"`
	ISBN          string `json:"isbn"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Status        string `json:"status"`
}

// NewBorrowedBookDetails combines a borrower and the book they just borrowed.
func NewBorrowedBookDetails(borrower *Borrower, book *Book) *BorrowedBookDetails {
	return &BorrowedBookDetails{
		BorrowerID:    borrower.ID,
		BorrowerName:  borrower.Name,
		BorrowerEmail: borrower.Email,
		BookID:        book.ID,
		ISBN:          book.ISBN,
		Title:         book.Title,
		Author:        book.Author,
		Status:        string(book.Status),
	}
}

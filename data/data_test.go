package data

import (
	"testing"

	"github.com/emzola/libraryportal/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookBorrowAndReturn(t *testing.T) {
	book := &Book{ID: 1, ISBN: "111", Title: "A", Author: "X", NoOfCopies: 2, Status: StatusAvailable}

	require.True(t, book.Borrow())
	assert.Equal(t, StatusBorrowed, book.Status)
	assert.Equal(t, 1, book.NoOfCopies)

	// a borrowed record cannot be borrowed again and is left as is
	assert.False(t, book.Borrow())
	assert.Equal(t, StatusBorrowed, book.Status)
	assert.Equal(t, 1, book.NoOfCopies)

	require.True(t, book.Return())
	assert.Equal(t, StatusAvailable, book.Status)
	assert.Equal(t, 2, book.NoOfCopies)

	assert.False(t, book.Return())
	assert.Equal(t, StatusAvailable, book.Status)
	assert.Equal(t, 2, book.NoOfCopies)
}

func TestBookBorrowWithoutCopies(t *testing.T) {
	book := &Book{Status: StatusAvailable}
	assert.False(t, book.Borrow())
	assert.Equal(t, 0, book.NoOfCopies)
}

func TestValidateBook(t *testing.T) {
	v := validator.New()
	ValidateBook(v, &Book{ISBN: "111", NoOfCopies: 1, Status: StatusAvailable})
	assert.True(t, v.Valid())

	v = validator.New()
	ValidateBook(v, &Book{Title: "Untitled", NoOfCopies: 1, Status: StatusAvailable})
	assert.Equal(t, map[string]string{"isbn": "must be provided"}, v.Errors)
}

func TestValidateBorrower(t *testing.T) {
	v := validator.New()
	ValidateBorrower(v, &Borrower{Name: "Ann"})
	assert.Equal(t, "must be provided", v.Errors["email"])
}

func TestNewBorrowedBookDetails(t *testing.T) {
	borrower := &Borrower{ID: 3, Name: "Ann", Email: "ann@example.com"}
	book := &Book{ID: 7, ISBN: "111", Title: "A", Author: "X", NoOfCopies: 0, Status: StatusBorrowed}

	details := NewBorrowedBookDetails(borrower, book)
	assert.Equal(t, &BorrowedBookDetails{
		BorrowerID:    3,
		BorrowerName:  "Ann",
		BorrowerEmail: "ann@example.com",
		BookID:        7,
		ISBN:          "111",
		Title:         "A",
		Author:        "X",
		Status:        "BORROWED",
	}, details)
}

func TestCredential(t *testing.T) {
	c, err := NewCredential("user", "password")
	require.NoError(t, err)
	assert.Nil(t, c.Password.Plaintext)

	ok, err := c.Password.Matches("password")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Password.Matches("wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

package mailer

import (
	"bytes"
	"testing"

	"github.com/emzola/libraryportal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	m := New("localhost", 25, "", "", "Library Portal <no-reply@example.com>")

	t.Run("borrower welcome", func(t *testing.T) {
		msg, err := m.Message("alice@example.com", "borrower_welcome.tmpl", map[string]string{"borrowerName": "Alice"})
		require.NoError(t, err)
		assert.Equal(t, []string{"alice@example.com"}, msg.GetHeader("To"))
		assert.Equal(t, []string{"Welcome to the Library Portal!"}, msg.GetHeader("Subject"))

		var buf bytes.Buffer
		_, err = msg.WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Hi Alice")
	})

	t.Run("borrow receipt", func(t *testing.T) {
		details := data.NewBorrowedBookDetails(
			&data.Borrower{ID: 1, Name: "Alice", Email: "alice@example.com"},
			&data.Book{ID: 2, ISBN: "978-0134190440", Title: "The Go Programming Language", Author: "Donovan", Status: data.StatusBorrowed},
		)
		msg, err := m.Message(details.BorrowerEmail, "book_borrowed.tmpl", details)
		require.NoError(t, err)
		assert.Equal(t, []string{`You borrowed "The Go Programming Language"`}, msg.GetHeader("Subject"))
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := m.Message("alice@example.com", "missing.tmpl", nil)
		assert.Error(t, err)
	})
}

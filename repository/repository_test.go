package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/emzola/libraryportal/data"
	"github.com/emzola/libraryportal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempRepo(t *testing.T) *repository {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo, err := New(db)
	require.NoError(t, err)
	require.NoError(t, repo.Migrate())
	return repo
}

func newBook(isbn, title, author string) *data.Book {
	return &data.Book{ISBN: isbn, Title: title, Author: author, NoOfCopies: 1, Status: data.StatusAvailable}
}

func TestMigrateIsIdempotent(t *testing.T) {
	repo := tempRepo(t)
	assert.NoError(t, repo.Migrate())
}

func TestBooks(t *testing.T) {
	repo := tempRepo(t)

	book := newBook("978-0134190440", "The Go Programming Language", "Donovan")
	require.NoError(t, repo.InsertBook(book))
	assert.Equal(t, int64(1), book.ID)
	assert.Equal(t, int32(1), book.Version)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetBook(book.ID)
		require.NoError(t, err)
		assert.Equal(t, book, got)
	})

	t.Run("get by natural key", func(t *testing.T) {
		got, err := repo.GetBookByNaturalKey(book.ISBN, book.Title, book.Author)
		require.NoError(t, err)
		assert.Equal(t, book.ID, got.ID)

		_, err = repo.GetBookByNaturalKey(book.ISBN, book.Title, "Kernighan")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetBook(42)
		assert.ErrorIs(t, err, ErrRecordNotFound)
		_, err = repo.GetBook(0)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("duplicate natural key", func(t *testing.T) {
		err := repo.InsertBook(newBook(book.ISBN, book.Title, book.Author))
		assert.ErrorIs(t, err, ErrDuplicateRecord)
	})

	t.Run("update bumps version", func(t *testing.T) {
		got, err := repo.GetBook(book.ID)
		require.NoError(t, err)
		got.NoOfCopies = 3
		require.NoError(t, repo.UpdateBook(got))
		assert.Equal(t, int32(2), got.Version)

		stored, err := repo.GetBook(book.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, stored.NoOfCopies)
		assert.Equal(t, int32(2), stored.Version)
	})

	t.Run("stale update conflicts", func(t *testing.T) {
		stale, err := repo.GetBook(book.ID)
		require.NoError(t, err)
		fresh, err := repo.GetBook(book.ID)
		require.NoError(t, err)

		fresh.Status = data.StatusBorrowed
		require.NoError(t, repo.UpdateBook(fresh))
		stale.NoOfCopies = 10
		assert.ErrorIs(t, repo.UpdateBook(stale), ErrEditConflict)
	})

	t.Run("list in id order", func(t *testing.T) {
		second := newBook("978-0201633610", "Design Patterns", "Gamma")
		require.NoError(t, repo.InsertBook(second))

		all, err := repo.GetAllBooks()
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, book.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)
	})
}

func TestGetAllBooksEmpty(t *testing.T) {
	repo := tempRepo(t)
	all, err := repo.GetAllBooks()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestBorrowers(t *testing.T) {
	repo := tempRepo(t)

	alice := &data.Borrower{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, repo.InsertBorrower(alice))
	assert.Equal(t, int64(1), alice.ID)

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.InsertBorrower(&data.Borrower{Name: "Other", Email: alice.Email})
		assert.ErrorIs(t, err, ErrDuplicateRecord)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := repo.GetBorrowerByEmail("alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice, got)

		_, err = repo.GetBorrowerByEmail("nobody@example.com")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("update", func(t *testing.T) {
		got, err := repo.GetBorrower(alice.ID)
		require.NoError(t, err)
		got.Name = "Alice Liddell"
		require.NoError(t, repo.UpdateBorrower(got))

		stored, err := repo.GetBorrower(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice Liddell", stored.Name)
		assert.Equal(t, int32(2), stored.Version)
	})

	t.Run("update to a taken email", func(t *testing.T) {
		bob := &data.Borrower{Name: "Bob", Email: "bob@example.com"}
		require.NoError(t, repo.InsertBorrower(bob))
		bob.Email = alice.Email
		assert.ErrorIs(t, repo.UpdateBorrower(bob), ErrDuplicateRecord)
	})

	t.Run("list", func(t *testing.T) {
		all, err := repo.GetAllBorrowers()
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "alice@example.com", all[0].Email)
		assert.Equal(t, "bob@example.com", all[1].Email)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteBorrower(alice.ID))
		_, err := repo.GetBorrower(alice.ID)
		assert.ErrorIs(t, err, ErrRecordNotFound)
		assert.ErrorIs(t, repo.DeleteBorrower(alice.ID), ErrRecordNotFound)
	})
}

func TestWithTx(t *testing.T) {
	repo := tempRepo(t)

	t.Run("commit", func(t *testing.T) {
		err := repo.WithTx(func(tx Repository) error {
			return tx.InsertBorrower(&data.Borrower{Email: "commit@example.com"})
		})
		require.NoError(t, err)
		_, err = repo.GetBorrowerByEmail("commit@example.com")
		assert.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := repo.WithTx(func(tx Repository) error {
			err := tx.InsertBorrower(&data.Borrower{Email: "rollback@example.com"})
			require.NoError(t, err)
			return boom
		})
		assert.ErrorIs(t, err, boom)
		_, err = repo.GetBorrowerByEmail("rollback@example.com")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("nested joins the outer transaction", func(t *testing.T) {
		err := repo.WithTx(func(tx Repository) error {
			return tx.WithTx(func(inner Repository) error {
				return inner.InsertBook(newBook("1", "Nested", ""))
			})
		})
		require.NoError(t, err)
		_, err = repo.GetBookByNaturalKey("1", "Nested", "")
		assert.NoError(t, err)
	})
}

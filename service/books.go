package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/emzola/libraryportal/data"
	"github.com/emzola/libraryportal/internal/validator"
	"github.com/emzola/libraryportal/repository"
)

type books interface {
	RegisterBook(isbn, title, author string) (*data.Book, error)
	ListBooks() ([]*data.Book, error)
	BorrowBook(borrowerID, bookID int64) (*data.BorrowedBookDetails, error)
	ReturnBook(bookID int64) (*data.Book, error)
}

// RegisterBook service registers a book. A book whose isbn, title and author
// match an existing record adds one copy to that record instead.
func (s *service) RegisterBook(isbn, title, author string) (*data.Book, error) {
	book := &data.Book{
		ISBN:       isbn,
		Title:      title,
		Author:     author,
		NoOfCopies: 1,
		Status:     data.StatusAvailable,
	}
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, ErrISBNRequired
	}
	var merged bool
	err := s.repo.WithTx(func(repo repository.Repository) error {
		existing, err := repo.GetBookByNaturalKey(book.ISBN, book.Title, book.Author)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				return repo.InsertBook(book)
			default:
				return err
			}
		}
		existing.NoOfCopies++
		err = repo.UpdateBook(existing)
		if err != nil {
			return err
		}
		book = existing
		merged = true
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict), errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	s.logger.PrintInfo("book registered", map[string]string{
		"book_id":      strconv.FormatInt(book.ID, 10),
		"isbn":         book.ISBN,
		"no_of_copies": strconv.Itoa(book.NoOfCopies),
		"merged":       strconv.FormatBool(merged),
	})
	return book, nil
}

// ListBooks service returns every book in storage order.
func (s *service) ListBooks() ([]*data.Book, error) {
	return s.repo.GetAllBooks()
}

// BorrowBook service lends a book to a borrower. The book is checked before
// the borrower, so a request naming two missing records reports the book.
func (s *service) BorrowBook(borrowerID, bookID int64) (*data.BorrowedBookDetails, error) {
	var details *data.BorrowedBookDetails
	err := s.repo.WithTx(func(repo repository.Repository) error {
		book, err := repo.GetBook(bookID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				return fmt.Errorf("%w with id: %d", ErrBookNotFound, bookID)
			default:
				return err
			}
		}
		borrower, err := repo.GetBorrower(borrowerID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				return fmt.Errorf("%w with id: %d", ErrBorrowerNotFound, borrowerID)
			default:
				return err
			}
		}
		if !book.Borrow() {
			return ErrBookUnavailable
		}
		err = repo.UpdateBook(book)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrEditConflict):
				return ErrBookUnavailable
			default:
				return err
			}
		}
		err = repo.UpdateBorrower(borrower)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrEditConflict):
				return ErrEditConflict
			default:
				return err
			}
		}
		details = data.NewBorrowedBookDetails(borrower, book)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.PrintInfo("book borrowed", map[string]string{
		"book_id":     strconv.FormatInt(details.BookID, 10),
		"borrower_id": strconv.FormatInt(details.BorrowerID, 10),
	})
	s.sendEmail(details.BorrowerEmail, "book_borrowed.tmpl", details)
	return details, nil
}

// ReturnBook service puts a borrowed book back on the shelf.
func (s *service) ReturnBook(bookID int64) (*data.Book, error) {
	var book *data.Book
	err := s.repo.WithTx(func(repo repository.Repository) error {
		var err error
		book, err = repo.GetBook(bookID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				return fmt.Errorf("%w with id: %d", ErrBookNotFound, bookID)
			default:
				return err
			}
		}
		if !book.Return() {
			return ErrBookNotBorrowed
		}
		err = repo.UpdateBook(book)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrEditConflict):
				return ErrBookNotBorrowed
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.PrintInfo("book returned", map[string]string{
		"book_id":      strconv.FormatInt(book.ID, 10),
		"no_of_copies": strconv.Itoa(book.NoOfCopies),
	})
	return book, nil
}

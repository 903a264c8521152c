package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/emzola/libraryportal/data"
	"github.com/jmoiron/sqlx"
)

type books interface {
	InsertBook(book *data.Book) error
	GetBook(ID int64) (*data.Book, error)
	GetBookByNaturalKey(isbn, title, author string) (*data.Book, error)
	GetAllBooks() ([]*data.Book, error)
	UpdateBook(book *data.Book) error
}

var bookColumns = []interface{}{"id", "isbn", "title", "author", "no_of_copies", "status", "version"}

// InsertBook creates a new book record and sets its generated ID.
func (r *repository) InsertBook(book *data.Book) error {
	ds := r.builder().Insert("books").Prepared(true).Rows(goqu.Record{
		"isbn":         book.ISBN,
		"title":        book.Title,
		"author":       book.Author,
		"no_of_copies": book.NoOfCopies,
		"status":       string(book.Status),
	})
	id, err := r.insert(ds)
	if err != nil {
		return err
	}
	book.ID = id
	book.Version = 1
	return nil
}

// GetBook retrieves a book record by its ID.
func (r *repository) GetBook(ID int64) (*data.Book, error) {
	if ID < 1 {
		return nil, ErrRecordNotFound
	}
	return r.getBook(goqu.Ex{"id": ID})
}

// GetBookByNaturalKey retrieves the book record for an (isbn, title, author) triple.
func (r *repository) GetBookByNaturalKey(isbn, title, author string) (*data.Book, error) {
	return r.getBook(goqu.Ex{"isbn": isbn, "title": title, "author": author})
}

func (r *repository) getBook(where goqu.Ex) (*data.Book, error) {
	query, args, err := r.builder().From("books").Prepared(true).
		Select(bookColumns...).
		Where(where).
		ToSQL()
	if err != nil {
		return nil, err
	}
	var book data.Book
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	err = sqlx.GetContext(ctx, r.db, &book, query, args...)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetAllBooks retrieves every book record ordered by ID.
func (r *repository) GetAllBooks() ([]*data.Book, error) {
	query, args, err := r.builder().From("books").Prepared(true).
		Select(bookColumns...).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}
	books := []*data.Book{}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	err = sqlx.SelectContext(ctx, r.db, &books, query, args...)
	if err != nil {
		return nil, err
	}
	return books, nil
}

// UpdateBook updates a book record. The write only succeeds if the stored
// version still matches the one that was read.
func (r *repository) UpdateBook(book *data.Book) error {
	query, args, err := r.builder().Update("books").Prepared(true).
		Set(goqu.Record{
			"isbn":         book.ISBN,
			"title":        book.Title,
			"author":       book.Author,
			"no_of_copies": book.NoOfCopies,
			"status":       string(book.Status),
			"version":      goqu.L("version + 1"),
		}).
		Where(goqu.Ex{"id": book.ID, "version": book.Version}).
		ToSQL()
	if err != nil {
		return err
	}
	rows, err := r.exec(query, args)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEditConflict
	}
	book.Version++
	return nil
}

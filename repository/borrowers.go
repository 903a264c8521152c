package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/emzola/libraryportal/data"
	"github.com/jmoiron/sqlx"
)

type borrowers interface {
	InsertBorrower(borrower *data.Borrower) error
	GetBorrower(ID int64) (*data.Borrower, error)
	GetBorrowerByEmail(email string) (*data.Borrower, error)
	GetAllBorrowers() ([]*data.Borrower, error)
	UpdateBorrower(borrower *data.Borrower) error
	DeleteBorrower(ID int64) error
}

var borrowerColumns = []interface{}{"id", "name", "email", "version"}

// InsertBorrower creates a new borrower record and sets its generated ID.
func (r *repository) InsertBorrower(borrower *data.Borrower) error {
	ds := r.builder().Insert("borrowers").Prepared(true).Rows(goqu.Record{
		"name":  borrower.Name,
		"email": borrower.Email,
	})
	id, err := r.insert(ds)
	if err != nil {
		return err
	}
	borrower.ID = id
	borrower.Version = 1
	return nil
}

// GetBorrower retrieves a borrower record by its ID.
func (r *repository) GetBorrower(ID int64) (*data.Borrower, error) {
	if ID < 1 {
		return nil, ErrRecordNotFound
	}
	return r.getBorrower(goqu.Ex{"id": ID})
}

// GetBorrowerByEmail retrieves a borrower record by its unique email.
func (r *repository) GetBorrowerByEmail(email string) (*data.Borrower, error) {
	return r.getBorrower(goqu.Ex{"email": email})
}

func (r *repository) getBorrower(where goqu.Ex) (*data.Borrower, error) {
	query, args, err := r.builder().From("borrowers").Prepared(true).
		Select(borrowerColumns...).
		Where(where).
		ToSQL()
	if err != nil {
		return nil, err
	}
	var borrower data.Borrower
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	err = sqlx.GetContext(ctx, r.db, &borrower, query, args...)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &borrower, nil
}

// GetAllBorrowers retrieves every borrower record ordered by ID.
func (r *repository) GetAllBorrowers() ([]*data.Borrower, error) {
	query, args, err := r.builder().From("borrowers").Prepared(true).
		Select(borrowerColumns...).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}
	borrowers := []*data.Borrower{}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	err = sqlx.SelectContext(ctx, r.db, &borrowers, query, args...)
	if err != nil {
		return nil, err
	}
	return borrowers, nil
}

// UpdateBorrower overwrites a borrower record using optimistic locking.
func (r *repository) UpdateBorrower(borrower *data.Borrower) error {
	query, args, err := r.builder().Update("borrowers").Prepared(true).
		Set(goqu.Record{
			"name":    borrower.Name,
			"email":   borrower.Email,
			"version": goqu.L("version + 1"),
		}).
		Where(goqu.Ex{"id": borrower.ID, "version": borrower.Version}).
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
	borrower.Version++
	return nil
}

// DeleteBorrower deletes a borrower record.
func (r *repository) DeleteBorrower(ID int64) error {
	if ID < 1 {
		return ErrRecordNotFound
	}
	query, args, err := r.builder().Delete("borrowers").Prepared(true).
		Where(goqu.Ex{"id": ID}).
		ToSQL()
	if err != nil {
		return err
	}
	rows, err := r.exec(query, args)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecordNotFound
	}
	return nil
}

package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/emzola/libraryportal/data"
	"github.com/emzola/libraryportal/internal/validator"
	"github.com/emzola/libraryportal/repository"
)

type borrowers interface {
	RegisterBorrower(name, email string) (*data.Borrower, error)
	ListBorrowers() ([]*data.Borrower, error)
	GetBorrower(ID int64) (*data.Borrower, error)
	UpdateBorrower(ID int64, name, email string) (*data.Borrower, error)
	DeleteBorrower(ID int64) error
}

// RegisterBorrower service registers a new borrower.
func (s *service) RegisterBorrower(name, email string) (*data.Borrower, error) {
	borrower := &data.Borrower{
		Name:  name,
		Email: email,
	}
	v := validator.New()
	if data.ValidateBorrower(v, borrower); !v.Valid() {
		return nil, ErrEmailRequired
	}
	err := s.repo.WithTx(func(repo repository.Repository) error {
		_, err := repo.GetBorrowerByEmail(borrower.Email)
		switch {
		case err == nil:
			return ErrDuplicateEmail
		case !errors.Is(err, repository.ErrRecordNotFound):
			return err
		}
		return repo.InsertBorrower(borrower)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrDuplicateEmail
		default:
			return nil, err
		}
	}
	s.logger.PrintInfo("borrower registered", map[string]string{
		"borrower_id": strconv.FormatInt(borrower.ID, 10),
	})
	// Send welcome email in a background goroutine to speed up response time
	s.sendEmail(borrower.Email, "borrower_welcome.tmpl", map[string]string{
		"borrowerName": borrower.Name,
	})
	return borrower, nil
}

// ListBorrowers service returns every borrower in storage order.
func (s *service) ListBorrowers() ([]*data.Borrower, error) {
	return s.repo.GetAllBorrowers()
}

// GetBorrower service retrieves a borrower by id.
func (s *service) GetBorrower(ID int64) (*data.Borrower, error) {
	borrower, err := s.repo.GetBorrower(ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, fmt.Errorf("%w with id: %d", ErrBorrowerNotFound, ID)
		default:
			return nil, err
		}
	}
	return borrower, nil
}

// UpdateBorrower service overwrites a borrower's name and email.
func (s *service) UpdateBorrower(ID int64, name, email string) (*data.Borrower, error) {
	var borrower *data.Borrower
	err := s.repo.WithTx(func(repo repository.Repository) error {
		var err error
		borrower, err = repo.GetBorrower(ID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				return fmt.Errorf("%w with id: %d", ErrBorrowerNotFound, ID)
			default:
				return err
			}
		}
		borrower.Name = name
		borrower.Email = email
		return repo.UpdateBorrower(borrower)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrDuplicateEmail
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	s.logger.PrintInfo("borrower updated", map[string]string{
		"borrower_id": strconv.FormatInt(borrower.ID, 10),
	})
	return borrower, nil
}

// DeleteBorrower service deletes a borrower. Deleting a missing borrower succeeds.
func (s *service) DeleteBorrower(ID int64) error {
	err := s.repo.DeleteBorrower(ID)
	if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return err
	}
	return nil
}

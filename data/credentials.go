package data

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Credential is the single in-memory account allowed through basic auth.
// Only the bcrypt hash of the password is kept.
type Credential struct {
	Username string
	Password password
}

// NewCredential hashes plaintextPassword and returns the credential for username.
func NewCredential(username, plaintextPassword string) (*Credential, error) {
	c := &Credential{Username: username}
	err := c.Password.Set(plaintextPassword)
	if err != nil {
		return nil, err
	}
	c.Password.Plaintext = nil
	return c, nil
}

// password defines the plaintext and hashed versions of a password.
// The plaintext field is a *pointer* to a string, so that we're able
// to distinguish between a plaintext password not being present in the struct at
// all, versus a plaintext password which is the empty string.
type password struct {
	Plaintext *string
	Hash      []byte
}

// Set calculates the bcrypt hash of a plaintext password.
func (p *password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Plaintext = &plaintextPassword
	p.Hash = hash
	return nil
}

// Matches checks whether the provided plaintext password matches the hashed
// password, returning true if it matches and false otherwise.
func (p *password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintextPassword))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}
	return true, nil
}

package data

import "time"

// CatalogSnapshot is a point-in-time copy of every book and borrower record.
type CatalogSnapshot struct {
	TakenAt   time.Time   `json:"takenAt"`
	Books     []*Book     `json:"books"`
	Borrowers []*Borrower `json:"borrowers"`
}

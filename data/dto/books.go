package dto

// RegisterBookRequestBody defines the request body for RegisterBook service.
// The read-only fields of a book are accepted so that a listed book can be posted
// back as is; their values are ignored.
type RegisterBookRequestBody struct {
	ID         *int64  `json:"id"`
	ISBN       string  `json:"isbn"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	NoOfCopies *int    `json:"noOfCopies"`
	Status     *string `json:"status"`
}

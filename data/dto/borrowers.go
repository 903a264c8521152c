package dto

// RegisterBorrowerRequestBody defines the request body for RegisterBorrower service.
type RegisterBorrowerRequestBody struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateBorrowerRequestBody defines the request body for UpdateBorrower service.
// Both fields overwrite the stored values, including with empty strings.
type UpdateBorrowerRequestBody struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

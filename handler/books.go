package handler

import (
	"fmt"
	"net/http"

	"github.com/emzola/libraryportal/data/dto"
)

// @Summary      Register a book
// @Description  Registers a book. A book with the same isbn, title and author adds one copy to the existing record.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        book  body      dto.RegisterBookRequestBody  true  "Book"
// @Success      201   {object}  data.Book
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorDetails
// @Router       /api/books/registerbook [post]
func (h *Handler) registerBookHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.RegisterBookRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.RegisterBook(requestBody.ISBN, requestBody.Title, requestBody.Author)
	if err != nil {
		h.serviceErrorResponse(w, r, err, bookErrorStatus)
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/api/books/%d", book.ID))
	err = h.encodeJSON(w, http.StatusCreated, book, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// @Summary      List books
// @Tags         books
// @Produce      json
// @Success      200  {array}   data.Book
// @Failure      500  {object}  ErrorDetails
// @Router       /api/books/getBooks [get]
func (h *Handler) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListBooks()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, books, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// @Summary      Borrow a book
// @Tags         books
// @Produce      json
// @Param        bookId      path      int  true  "Book ID"
// @Param        borrowerId  path      int  true  "Borrower ID"
// @Success      200         {object}  data.BorrowedBookDetails
// @Failure      400         {object}  ErrorResponse
// @Failure      500         {object}  ErrorDetails
// @Router       /api/books/{bookId}/{borrowerId}/borrow [put]
func (h *Handler) borrowBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	borrowerID, err := h.readIDParam(r, "borrowerId")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	details, err := h.service.BorrowBook(borrowerID, bookID)
	if err != nil {
		h.serviceErrorResponse(w, r, err, bookErrorStatus)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, details, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// @Summary      Return a book
// @Tags         books
// @Produce      json
// @Param        bookId  path      int  true  "Book ID"
// @Success      200     {object}  data.Book
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorDetails
// @Router       /api/books/{bookId}/return [put]
func (h *Handler) returnBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.ReturnBook(bookID)
	if err != nil {
		h.serviceErrorResponse(w, r, err, bookErrorStatus)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, book, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/emzola/libraryportal/data/dto"
)

// @Summary      Register a borrower
// @Tags         borrowers
// @Accept       json
// @Produce      json
// @Param        borrower  body      dto.RegisterBorrowerRequestBody  true  "Borrower"
// @Success      201       {object}  data.Borrower
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorDetails
// @Router       /api/borrowers/registerBorrower [post]
func (h *Handler) registerBorrowerHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.RegisterBorrowerRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	borrower, err := h.service.RegisterBorrower(requestBody.Name, requestBody.Email)
	if err != nil {
		h.serviceErrorResponse(w, r, err, borrowerErrorStatus)
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/api/borrowers/getBorrowerById/%d", borrower.ID))
	err = h.encodeJSON(w, http.StatusCreated, borrower, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// @Summary      List borrowers
// @Tags         borrowers
// @Produce      json
// @Success      200  {array}   data.Borrower
// @Failure      500  {object}  ErrorDetails
// @Router       /api/borrowers/getBorrowers [get]
func (h *Handler) listBorrowersHandler(w http.ResponseWriter, r *http.Request) {
	borrowers, err := h.service.ListBorrowers()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, borrowers, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// @Summary      Get a borrower
// @Tags         borrowers
// @Produce      json
// @Param        id   path      int  true  "Borrower ID"
// @Success      200  {object}  data.Borrower
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorDetails
// @Router       /api/borrowers/getBorrowerById/{id} [get]
func (h *Handler) showBorrowerHandler(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := h.readIDParam(r, "id")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	borrower, err := h.service.GetBorrower(borrowerID)
	if err != nil {
		h.serviceErrorResponse(w, r, err, borrowerErrorStatus)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, borrower, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// @Summary      Update a borrower
// @Description  Overwrites the name and email of a borrower.
// @Tags         borrowers
// @Accept       json
// @Produce      json
// @Param        id        path      int                             true  "Borrower ID"
// @Param        borrower  body      dto.UpdateBorrowerRequestBody  true  "Borrower"
// @Success      200       {object}  data.Borrower
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      500       {object}  ErrorDetails
// @Router       /api/borrowers/updateBorrowerById/{id} [put]
func (h *Handler) updateBorrowerHandler(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := h.readIDParam(r, "id")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	var requestBody dto.UpdateBorrowerRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	borrower, err := h.service.UpdateBorrower(borrowerID, requestBody.Name, requestBody.Email)
	if err != nil {
		h.serviceErrorResponse(w, r, err, borrowerErrorStatus)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, borrower, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// @Summary      Delete a borrower
// @Tags         borrowers
// @Param        id   path  int  true  "Borrower ID"
// @Success      204
// @Failure      500  {object}  ErrorDetails
// @Router       /api/borrowers/deleteBorrowerById/{id} [delete]
func (h *Handler) deleteBorrowerHandler(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := h.readIDParam(r, "id")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	err = h.service.DeleteBorrower(borrowerID)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

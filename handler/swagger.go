package handler

import (
	"net/http"

	"github.com/swaggo/swag"
)

// swaggerSpecHandler serves the registered OpenAPI document.
func (h *Handler) swaggerSpecHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

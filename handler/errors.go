package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/emzola/libraryportal/service"
)

// ErrorResponse is the body of every anticipated failure. ErrorCode repeats
// the HTTP status.
type ErrorResponse struct {
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// ErrorDetails is the body of unexpected failures.
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
}

// Status tables for domain errors. A kind missing from a table is a server error.
var (
	bookErrorStatus = map[service.Kind]int{
		service.KindInvalidInput: http.StatusBadRequest,
		service.KindNotFound:     http.StatusBadRequest,
		service.KindConflict:     http.StatusBadRequest,
	}
	borrowerErrorStatus = map[service.Kind]int{
		service.KindInvalidInput: http.StatusBadRequest,
		service.KindNotFound:     http.StatusNotFound,
		service.KindConflict:     http.StatusBadRequest,
	}
)

func (h *Handler) logError(r *http.Request, err error) {
	h.logger.PrintError(err, map[string]string{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
		"request_id":     h.contextGetRequestID(r),
	})
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	err := h.encodeJSON(w, status, ErrorResponse{ErrorCode: status, ErrorMessage: message}, nil)
	if err != nil {
		h.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serviceErrorResponse maps err through table, falling back to a server error.
func (h *Handler) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error, table map[service.Kind]int) {
	status, ok := table[service.KindOf(err)]
	if !ok {
		h.serverErrorResponse(w, r, err)
		return
	}
	h.errorResponse(w, r, status, err.Error())
}

func (h *Handler) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.logError(r, err)
	details := ErrorDetails{
		Timestamp: time.Now().UTC(),
		Message:   "the server encountered a problem and could not process your request",
		Details:   "uri=" + r.URL.Path,
	}
	err = h.encodeJSON(w, http.StatusInternalServerError, details, nil)
	if err != nil {
		h.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	h.errorResponse(w, r, http.StatusNotFound, message)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	h.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (h *Handler) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (h *Handler) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	message := "rate limit exceeded"
	h.errorResponse(w, r, http.StatusTooManyRequests, message)
}

func (h *Handler) authenticationRequiredResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
	message := "you must be authenticated to access this resource"
	h.errorResponse(w, r, http.StatusUnauthorized, message)
}

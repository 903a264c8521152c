package handler

import (
	"expvar"
	"net/http"

	_ "github.com/emzola/libraryportal/docs"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := mux.NewRouter()

	router.NotFoundHandler = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowedHandler = http.HandlerFunc(h.methodNotAllowed)

	router.HandleFunc("/api/books/registerbook", h.registerBookHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/books/getBooks", h.listBooksHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/books/{bookId}/{borrowerId}/borrow", h.borrowBookHandler).Methods(http.MethodPut)
	router.HandleFunc("/api/books/{bookId}/return", h.returnBookHandler).Methods(http.MethodPut)

	router.HandleFunc("/api/borrowers/registerBorrower", h.registerBorrowerHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/borrowers/getBorrowers", h.listBorrowersHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/borrowers/getBorrowerById/{id}", h.showBorrowerHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/borrowers/updateBorrowerById/{id}", h.updateBorrowerHandler).Methods(http.MethodPut)
	router.HandleFunc("/api/borrowers/deleteBorrowerById/{id}", h.deleteBorrowerHandler).Methods(http.MethodDelete)

	router.HandleFunc("/v1/healthcheck", h.healthcheckHandler).Methods(http.MethodGet)
	router.Handle("/debug/vars", expvar.Handler()).Methods(http.MethodGet)

	// Swagger routes
	router.HandleFunc("/spec", h.swaggerSpecHandler).Methods(http.MethodGet)
	router.PathPrefix("/swagger-ui/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger-ui/doc.json"))).Methods(http.MethodGet)

	return h.recoverPanic(h.logRequest(h.metrics(h.enableCORS(h.rateLimit(h.authenticate(router))))))
}

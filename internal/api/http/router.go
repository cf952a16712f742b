package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"shareit-backend/internal/security"
	"shareit-backend/internal/service"
)

// Services bundles what the router serves.
type Services struct {
	Users    service.UserService
	Items    service.ItemService
	Bookings service.BookingService
	Requests service.RequestService
}

// NewRouter builds the API router. tm may be nil to accept only the
// X-Sharer-User-Id header.
func NewRouter(svc Services, tm security.TokenManager) *mux.Router {
	v := NewValidator()
	users := NewUserHandler(svc.Users, v)
	items := NewItemHandler(svc.Items, v)
	bookings := NewBookingHandler(svc.Bookings, v)
	requests := NewRequestHandler(svc.Requests, v)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "resource not found"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	router.HandleFunc("/users", users.Create).Methods(http.MethodPost).Name("users.create")
	router.HandleFunc("/users/{id:[0-9]+}", users.Get).Methods(http.MethodGet).Name("users.get")
	router.HandleFunc("/users/{id:[0-9]+}", users.Update).Methods(http.MethodPatch).Name("users.update")
	router.HandleFunc("/users/{id:[0-9]+}", users.Delete).Methods(http.MethodDelete).Name("users.delete")

	router.HandleFunc("/items/search", items.Search).Methods(http.MethodGet).Name("items.search")
	router.HandleFunc("/items", items.Create).Methods(http.MethodPost).Name("items.create")
	router.HandleFunc("/items", items.ListOwn).Methods(http.MethodGet).Name("items.list")
	router.HandleFunc("/items/{id:[0-9]+}", items.Get).Methods(http.MethodGet).Name("items.get")
	router.HandleFunc("/items/{id:[0-9]+}", items.Update).Methods(http.MethodPatch).Name("items.update")
	router.HandleFunc("/items/{id:[0-9]+}", items.Delete).Methods(http.MethodDelete).Name("items.delete")
	router.HandleFunc("/items/{id:[0-9]+}/comment", items.AddComment).Methods(http.MethodPost).Name("items.comment")

	router.HandleFunc("/bookings/owner", bookings.ListForOwner).Methods(http.MethodGet).Name("bookings.list_owner")
	router.HandleFunc("/bookings", bookings.Create).Methods(http.MethodPost).Name("bookings.create")
	router.HandleFunc("/bookings", bookings.ListForBooker).Methods(http.MethodGet).Name("bookings.list")
	router.HandleFunc("/bookings/{id:[0-9]+}", bookings.Get).Methods(http.MethodGet).Name("bookings.get")
	router.HandleFunc("/bookings/{id:[0-9]+}", bookings.Approve).Methods(http.MethodPatch).Name("bookings.approve")

	router.HandleFunc("/requests/all", requests.ListOther).Methods(http.MethodGet).Name("requests.list_other")
	router.HandleFunc("/requests", requests.Create).Methods(http.MethodPost).Name("requests.create")
	router.HandleFunc("/requests", requests.ListOwn).Methods(http.MethodGet).Name("requests.list_own")
	router.HandleFunc("/requests/{id:[0-9]+}", requests.Get).Methods(http.MethodGet).Name("requests.get")

	router.Use(RequestContext, Recover, NewAuthMiddleware(tm).Handler)
	return router
}

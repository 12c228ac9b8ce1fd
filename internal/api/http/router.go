package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"roomstay-backend/internal/security"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth    *AuthHandler
	Room    *RoomHandler
	Rental  *RentalHandler
	Invoice *InvoiceHandler
	Catalog *CatalogHandler
}

// NewRouter mounts the API under /api/v1. Everything except login requires
// a valid token; mutating and registry routes additionally require the
// admin role. Invoice reads and payment are open to customer tokens, which
// are scoped to their own customer id inside the handler.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	root := mux.NewRouter()
	api := root.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/auth/users", RequireAdmin(h.Auth.CreateUser)).Methods(http.MethodPost)

	authed.HandleFunc("/rooms/list", h.Room.List).Methods(http.MethodGet)
	authed.HandleFunc("/rooms/add", RequireAdmin(h.Room.Add)).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/update/{id:[0-9]+}", RequireAdmin(h.Room.Update)).Methods(http.MethodPut)
	authed.HandleFunc("/rooms/delete/{id:[0-9]+}", RequireAdmin(h.Room.Delete)).Methods(http.MethodDelete)

	authed.HandleFunc("/rentals/list", RequireAdmin(h.Rental.List)).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/uninvoiced", RequireAdmin(h.Rental.ListUninvoiced)).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/rent", RequireAdmin(h.Rental.Rent)).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{roomId:[0-9]+}", RequireAdmin(h.Rental.GetByRoom)).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id:[0-9]+}/close", RequireAdmin(h.Rental.Close)).Methods(http.MethodPost)

	authed.HandleFunc("/invoices/create", RequireAdmin(h.Invoice.Create)).Methods(http.MethodPost)
	authed.HandleFunc("/invoices/list", RequireAdmin(h.Invoice.List)).Methods(http.MethodGet)
	authed.HandleFunc("/invoices/customer/{customerId:[0-9]+}", h.Invoice.ListByCustomer).Methods(http.MethodGet)
	authed.HandleFunc("/invoices/{id:[0-9]+}", h.Invoice.Get).Methods(http.MethodGet)
	authed.HandleFunc("/invoices/{id:[0-9]+}/pay", h.Invoice.Pay).Methods(http.MethodPut)

	authed.HandleFunc("/extras/create", RequireAdmin(h.Catalog.CreateExtra)).Methods(http.MethodPost)
	authed.HandleFunc("/extras/list", RequireAdmin(h.Catalog.ListExtras)).Methods(http.MethodGet)

	authed.HandleFunc("/customers/add", RequireAdmin(h.Catalog.AddCustomer)).Methods(http.MethodPost)
	authed.HandleFunc("/customers/list", RequireAdmin(h.Catalog.ListCustomers)).Methods(http.MethodGet)

	return root
}

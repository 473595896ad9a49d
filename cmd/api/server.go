package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	"coffeeshop/pkg/account"
	"coffeeshop/pkg/auth"
	"coffeeshop/pkg/catalog"
	"coffeeshop/pkg/logger"
	"coffeeshop/pkg/order"
	"coffeeshop/pkg/session"
)

const maxBodyBytes = 1 << 20

// server holds the dependencies shared by all handlers.
type server struct {
	log      *logger.Logger
	tracer   trace.Tracer
	catalog  catalog.Repository
	accounts *account.Service
	orders   order.Repository
	engine   *order.Engine
	sessions session.Store
	tokens   *auth.Manager
	secure   bool
}

func (s *server) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.traceMiddleware)

	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/menu", s.menuHandler).Methods(http.MethodGet)
	r.HandleFunc("/menu/{id:[0-9]+}", s.menuItemHandler).Methods(http.MethodGet)
	r.HandleFunc("/register", s.registerHandler).Methods(http.MethodPost)
	r.HandleFunc("/login", s.loginHandler).Methods(http.MethodPost)
	r.HandleFunc("/contact", s.contactHandler).Methods(http.MethodPost)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	user := r.NewRoute().Subrouter()
	user.Use(s.sessionMiddleware)
	user.HandleFunc("/logout", s.logoutHandler).Methods(http.MethodPost)
	user.HandleFunc("/profile", s.profileHandler).Methods(http.MethodGet)
	user.HandleFunc("/cart", s.cartHandler).Methods(http.MethodGet)
	user.HandleFunc("/cart", s.clearCartHandler).Methods(http.MethodDelete)
	user.HandleFunc("/cart/items", s.addCartItemHandler).Methods(http.MethodPost)
	user.HandleFunc("/cart/items/{id:[0-9]+}", s.setCartItemHandler).Methods(http.MethodPut)
	user.HandleFunc("/cart/items/{id:[0-9]+}", s.removeCartItemHandler).Methods(http.MethodDelete)
	user.HandleFunc("/cart/checkout", s.checkoutHandler).Methods(http.MethodPost)
	user.HandleFunc("/api/cart/add", s.quickAddHandler).Methods(http.MethodPost)
	user.HandleFunc("/orders", s.createOrderHandler).Methods(http.MethodPost)
	user.HandleFunc("/orders", s.listOrdersHandler).Methods(http.MethodGet)
	user.HandleFunc("/orders/{id:[0-9]+}", s.getOrderHandler).Methods(http.MethodGet)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(s.sessionMiddleware, s.adminMiddleware)
	admin.HandleFunc("", s.dashboardHandler).Methods(http.MethodGet)
	admin.HandleFunc("/coffees", s.adminListCoffeesHandler).Methods(http.MethodGet)
	admin.HandleFunc("/coffees", s.adminCreateCoffeeHandler).Methods(http.MethodPost)
	admin.HandleFunc("/coffees/{id:[0-9]+}", s.adminGetCoffeeHandler).Methods(http.MethodGet)
	admin.HandleFunc("/coffees/{id:[0-9]+}", s.adminUpdateCoffeeHandler).Methods(http.MethodPut)
	admin.HandleFunc("/coffees/{id:[0-9]+}", s.adminDeleteCoffeeHandler).Methods(http.MethodDelete)
	admin.HandleFunc("/users", s.adminListUsersHandler).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id:[0-9]+}", s.adminDeleteUserHandler).Methods(http.MethodDelete)
	admin.HandleFunc("/orders", s.adminListOrdersHandler).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id:[0-9]+}", s.adminGetOrderHandler).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id:[0-9]+}/status", s.adminUpdateStatusHandler).Methods(http.MethodPut)

	return r
}

// healthHandler reports liveness.
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// fail maps a domain error onto an HTTP status. Unrecognised errors are
// logged and reported as a generic 500.
func (s *server) fail(ctx context.Context, w http.ResponseWriter, op string, err error) {
	var status int
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, account.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, catalog.ErrInvalidCoffee),
		errors.Is(err, account.ErrInvalidRegistration),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrEmptyOrder):
		status = http.StatusBadRequest
	case errors.Is(err, account.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, account.ErrSelfDelete):
		status = http.StatusForbidden
	case errors.Is(err, account.ErrDuplicateEmail),
		errors.Is(err, account.ErrHasOrders),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrStatusChanged):
		status = http.StatusConflict
	default:
		s.log.Error(ctx, op, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.log.Debug(ctx, op, "status", status, "error", err)
	http.Error(w, err.Error(), status)
}

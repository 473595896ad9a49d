package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"coffeeshop/pkg/account"
	"coffeeshop/pkg/catalog"
	"coffeeshop/pkg/order"
	"coffeeshop/pkg/otel"
	"coffeeshop/pkg/session"
)

type coffeeRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   *bool           `json:"available"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// adminOrder is an order together with the customer who placed it.
type adminOrder struct {
	order.Order
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

type dashboard struct {
	Users        int             `json:"total_users"`
	Coffees      int             `json:"total_coffees"`
	Orders       int             `json:"total_orders"`
	Revenue      decimal.Decimal `json:"total_revenue"`
	RecentOrders []adminOrder    `json:"recent_orders"`
}

// withCustomers attaches account details to orders. Orders whose account
// no longer exists keep empty customer fields.
func (s *server) withCustomers(ctx context.Context, orders []order.Order) ([]adminOrder, error) {
	out := make([]adminOrder, 0, len(orders))
	seen := make(map[int64]account.Account)
	for _, o := range orders {
		a, ok := seen[o.AccountID]
		if !ok {
			var err error
			a, err = s.accounts.Get(ctx, o.AccountID)
			if err != nil && !errors.Is(err, account.ErrNotFound) {
				return nil, err
			}
			seen[o.AccountID] = a
		}
		out = append(out, adminOrder{
			Order:         o,
			CustomerName:  strings.TrimSpace(a.FirstName + " " + a.LastName),
			CustomerEmail: a.Email,
		})
	}
	return out, nil
}

// dashboardHandler returns shop totals and the latest orders.
// @Summary Admin dashboard
// @Produce json
// @Success 200 {object} dashboard
// @Security BearerAuth
// @Router /admin [get]
func (s *server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "dashboardHandler")
	defer span.End()

	var (
		d   dashboard
		err error
	)
	if d.Users, err = s.accounts.Count(ctx); err != nil {
		s.fail(ctx, w, "count users", err)
		return
	}
	if d.Coffees, err = s.catalog.Count(ctx); err != nil {
		s.fail(ctx, w, "count coffees", err)
		return
	}
	stats, err := s.orders.Stats(ctx)
	if err != nil {
		s.fail(ctx, w, "order stats", err)
		return
	}
	d.Orders, d.Revenue = stats.Orders, stats.Revenue

	recent, err := s.orders.List(ctx, order.Filter{Limit: 5})
	if err != nil {
		s.fail(ctx, w, "recent orders", err)
		return
	}
	if d.RecentOrders, err = s.withCustomers(ctx, recent); err != nil {
		s.fail(ctx, w, "recent orders", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// adminListCoffeesHandler lists every coffee, available or not.
// @Summary List coffees
// @Produce json
// @Success 200 {array} catalog.Coffee
// @Security BearerAuth
// @Router /admin/coffees [get]
func (s *server) adminListCoffeesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminListCoffeesHandler")
	defer span.End()

	coffees, err := s.catalog.List(ctx)
	if err != nil {
		s.fail(ctx, w, "list coffees", err)
		return
	}
	if coffees == nil {
		coffees = []catalog.Coffee{}
	}
	writeJSON(w, http.StatusOK, coffees)
}

// adminCreateCoffeeHandler adds a coffee to the menu.
// @Summary Create coffee
// @Accept json
// @Produce json
// @Param coffee body coffeeRequest true "Coffee"
// @Success 201 {object} catalog.Coffee
// @Failure 400 {string} string
// @Security BearerAuth
// @Router /admin/coffees [post]
func (s *server) adminCreateCoffeeHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminCreateCoffeeHandler")
	defer span.End()

	var req coffeeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	c := catalog.Coffee{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available == nil || *req.Available,
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		s.fail(ctx, w, "create coffee", err)
		return
	}
	if err := s.catalog.Create(ctx, &c); err != nil {
		s.fail(ctx, w, "create coffee", err)
		return
	}
	s.log.Info(ctx, "coffee created", "coffee_id", c.ID, "name", c.Name)
	writeJSON(w, http.StatusCreated, c)
}

// adminGetCoffeeHandler returns one coffee.
// @Summary Get coffee
// @Produce json
// @Param id path int true "Coffee ID"
// @Success 200 {object} catalog.Coffee
// @Failure 404 {string} string
// @Security BearerAuth
// @Router /admin/coffees/{id} [get]
func (s *server) adminGetCoffeeHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminGetCoffeeHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	c, err := s.catalog.Get(ctx, id)
	if err != nil {
		s.fail(ctx, w, "get coffee", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// adminUpdateCoffeeHandler replaces a coffee. An omitted "available" keeps
// the current value.
// @Summary Update coffee
// @Accept json
// @Produce json
// @Param id path int true "Coffee ID"
// @Param coffee body coffeeRequest true "Coffee"
// @Success 200 {object} catalog.Coffee
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Security BearerAuth
// @Router /admin/coffees/{id} [put]
func (s *server) adminUpdateCoffeeHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminUpdateCoffeeHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	var req coffeeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	c, err := s.catalog.Get(ctx, id)
	if err != nil {
		s.fail(ctx, w, "get coffee", err)
		return
	}
	c.Name, c.Description, c.Price, c.Category = req.Name, req.Description, req.Price, req.Category
	if req.Available != nil {
		c.Available = *req.Available
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		s.fail(ctx, w, "update coffee", err)
		return
	}
	if err := s.catalog.Update(ctx, c); err != nil {
		s.fail(ctx, w, "update coffee", err)
		return
	}
	s.log.Info(ctx, "coffee updated", "coffee_id", c.ID)
	writeJSON(w, http.StatusOK, c)
}

// adminDeleteCoffeeHandler removes a coffee. Past orders keep their items.
// @Summary Delete coffee
// @Param id path int true "Coffee ID"
// @Success 204
// @Failure 404 {string} string
// @Security BearerAuth
// @Router /admin/coffees/{id} [delete]
func (s *server) adminDeleteCoffeeHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminDeleteCoffeeHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := s.catalog.Delete(ctx, id); err != nil {
		s.fail(ctx, w, "delete coffee", err)
		return
	}
	s.log.Info(ctx, "coffee deleted", "coffee_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// adminListUsersHandler lists all accounts.
// @Summary List users
// @Produce json
// @Success 200 {array} account.Account
// @Security BearerAuth
// @Router /admin/users [get]
func (s *server) adminListUsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminListUsersHandler")
	defer span.End()

	users, err := s.accounts.List(ctx)
	if err != nil {
		s.fail(ctx, w, "list users", err)
		return
	}
	if users == nil {
		users = []account.Account{}
	}
	writeJSON(w, http.StatusOK, users)
}

// adminDeleteUserHandler removes an account without orders.
// @Summary Delete user
// @Param id path int true "Account ID"
// @Success 204
// @Failure 403 {string} string
// @Failure 404 {string} string
// @Failure 409 {string} string
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (s *server) adminDeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminDeleteUserHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	sess, _ := session.FromContext(ctx)
	if err := s.accounts.Delete(ctx, sess.AccountID, id); err != nil {
		s.fail(ctx, w, "delete user", err)
		return
	}
	s.log.Info(ctx, "account deleted", "account_id", id, "by", sess.AccountID)
	w.WriteHeader(http.StatusNoContent)
}

// adminListOrdersHandler lists all orders, newest first.
// @Summary List all orders
// @Produce json
// @Success 200 {array} adminOrder
// @Security BearerAuth
// @Router /admin/orders [get]
func (s *server) adminListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminListOrdersHandler")
	defer span.End()

	orders, err := s.orders.List(ctx, order.Filter{})
	if err != nil {
		s.fail(ctx, w, "list orders", err)
		return
	}
	out, err := s.withCustomers(ctx, orders)
	if err != nil {
		s.fail(ctx, w, "list orders", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// adminGetOrderHandler returns one order with its customer.
// @Summary Get any order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} adminOrder
// @Failure 404 {string} string
// @Security BearerAuth
// @Router /admin/orders/{id} [get]
func (s *server) adminGetOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminGetOrderHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		s.fail(ctx, w, "get order", err)
		return
	}
	out, err := s.withCustomers(ctx, []order.Order{o})
	if err != nil {
		s.fail(ctx, w, "get order", err)
		return
	}
	writeJSON(w, http.StatusOK, out[0])
}

// adminUpdateStatusHandler moves an order through its lifecycle.
// @Summary Update order status
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body statusRequest true "New status"
// @Success 200 {object} order.Order
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 409 {string} string
// @Security BearerAuth
// @Router /admin/orders/{id}/status [put]
func (s *server) adminUpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminUpdateStatusHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		s.fail(ctx, w, "update status", err)
		return
	}
	o, err := s.engine.UpdateStatus(ctx, id, status)
	if err != nil {
		s.fail(ctx, w, "update status", err)
		return
	}
	s.log.Info(ctx, "order status updated", "order_id", o.ID, "status", o.Status)
	writeJSON(w, http.StatusOK, o)
}

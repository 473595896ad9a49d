package main

import (
	"net/http"

	"coffeeshop/pkg/order"
	"coffeeshop/pkg/otel"
	"coffeeshop/pkg/session"
)

// orderRequest is an explicit order: coffee id -> quantity.
type orderRequest struct {
	Items map[int64]int `json:"items"`
}

// createOrderHandler creates an order from an explicit list of quantities.
// Unknown or unavailable coffees are left out of the order.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body orderRequest true "Quantities by coffee id"
// @Success 201 {object} order.Order
// @Failure 400 {string} string
// @Security BearerAuth
// @Router /orders [post]
func (s *server) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	var req orderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sess, _ := session.FromContext(ctx)
	o, err := s.engine.PlaceOrder(ctx, sess.AccountID, req.Items)
	if err != nil {
		s.fail(ctx, w, "place order", err)
		return
	}
	s.log.Info(ctx, "order placed", "order_id", o.ID, "account_id", o.AccountID, "total", o.Total.StringFixed(2), "items", len(o.Items))
	writeJSON(w, http.StatusCreated, o)
}

// listOrdersHandler lists the orders of the signed-in account.
// @Summary List my orders
// @Produce json
// @Success 200 {array} order.Order
// @Security BearerAuth
// @Router /orders [get]
func (s *server) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrdersHandler")
	defer span.End()

	sess, _ := session.FromContext(ctx)
	orders, err := s.orders.List(ctx, order.Filter{AccountID: sess.AccountID})
	if err != nil {
		s.fail(ctx, w, "list orders", err)
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// getOrderHandler retrieves an order by ID. Customers only see their own
// orders.
// @Summary Get order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} order.Order
// @Failure 404 {string} string
// @Security BearerAuth
// @Router /orders/{id} [get]
func (s *server) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getOrderHandler")
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
	sess, _ := session.FromContext(ctx)
	if o.AccountID != sess.AccountID && !sess.IsAdmin {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"

	"github.com/shopspring/decimal"

	"coffeeshop/pkg/catalog"
	"coffeeshop/pkg/order"
	"coffeeshop/pkg/otel"
	"coffeeshop/pkg/session"
)

// errUnavailable is returned when a coffee exists but is not on sale.
var errUnavailable = errors.New("coffee is not available")

var tooManyMsg = fmt.Sprintf("at most %d of one coffee per order", order.MaxQuantity)

type cartLine struct {
	CoffeeID  int64           `json:"coffee_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Available bool            `json:"available"`
}

type cartView struct {
	Items []cartLine      `json:"items"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type cartItemRequest struct {
	CoffeeID int64 `json:"coffee_id"`
	Quantity int   `json:"quantity"`
}

type quickAddResponse struct {
	Success   bool   `json:"success"`
	CartCount int    `json:"cart_count"`
	Message   string `json:"message"`
}

// orderable looks up a coffee for the cart. An unavailable coffee is
// returned together with errUnavailable.
func (s *server) orderable(ctx context.Context, id int64) (catalog.Coffee, error) {
	c, err := s.catalog.Get(ctx, id)
	if err != nil {
		return catalog.Coffee{}, err
	}
	if !c.Available {
		return c, fmt.Errorf("%w: %s", errUnavailable, c.Name)
	}
	return c, nil
}

func (s *server) viewCart(ctx context.Context, sess *session.Session) (cartView, error) {
	v := cartView{Items: []cartLine{}, Total: decimal.Zero}
	for id, qty := range sess.Cart.Snapshot() {
		c, err := s.catalog.Get(ctx, id)
		if errors.Is(err, catalog.ErrNotFound) {
			continue
		}
		if err != nil {
			return cartView{}, err
		}
		line := cartLine{
			CoffeeID:  id,
			Name:      c.Name,
			Price:     c.Price,
			Quantity:  qty,
			Subtotal:  c.Price.Mul(decimal.NewFromInt(int64(qty))),
			Available: c.Available,
		}
		if line.Available {
			v.Total = v.Total.Add(line.Subtotal)
			v.Count += qty
		}
		v.Items = append(v.Items, line)
	}
	return v, nil
}

func (s *server) saveCart(ctx context.Context, w http.ResponseWriter, sess *session.Session) bool {
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.fail(ctx, w, "save session", err)
		return false
	}
	return true
}

func (s *server) writeCart(ctx context.Context, w http.ResponseWriter, sess *session.Session) {
	v, err := s.viewCart(ctx, sess)
	if err != nil {
		s.fail(ctx, w, "view cart", err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// cartHandler shows the cart with current prices.
// @Summary View cart
// @Produce json
// @Success 200 {object} cartView
// @Security BearerAuth
// @Router /cart [get]
func (s *server) cartHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "cartHandler")
	defer span.End()

	sess, _ := session.FromContext(ctx)
	s.writeCart(ctx, w, sess)
}

// addCartItemHandler adds a coffee to the cart.
// @Summary Add to cart
// @Accept json
// @Produce json
// @Param item body cartItemRequest true "Coffee and optional quantity (default 1)"
// @Success 200 {object} cartView
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 409 {string} string
// @Security BearerAuth
// @Router /cart/items [post]
func (s *server) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "addCartItemHandler")
	defer span.End()

	var req cartItemRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Quantity < 0 {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if _, err := s.orderable(ctx, req.CoffeeID); err != nil {
		s.failCart(ctx, w, err)
		return
	}

	sess, _ := session.FromContext(ctx)
	qty := sess.Cart.Quantity(req.CoffeeID)
	if req.Quantity > order.MaxQuantity-qty || qty >= order.MaxQuantity {
		http.Error(w, tooManyMsg, http.StatusBadRequest)
		return
	}
	sess.Cart.Set(req.CoffeeID, qty+max(req.Quantity, 1))
	if !s.saveCart(ctx, w, sess) {
		return
	}
	s.writeCart(ctx, w, sess)
}

// setCartItemHandler changes the quantity of a cart line. A quantity of zero
// or less removes it.
// @Summary Set cart quantity
// @Accept json
// @Produce json
// @Param id path int true "Coffee ID"
// @Param item body cartItemRequest true "New quantity"
// @Success 200 {object} cartView
// @Failure 400 {string} string
// @Security BearerAuth
// @Router /cart/items/{id} [put]
func (s *server) setCartItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "setCartItemHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	var req cartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Quantity > order.MaxQuantity {
		http.Error(w, tooManyMsg, http.StatusBadRequest)
		return
	}

	sess, _ := session.FromContext(ctx)
	if req.Quantity > 0 && sess.Cart.Quantity(id) == 0 {
		if _, err := s.orderable(ctx, id); err != nil {
			s.failCart(ctx, w, err)
			return
		}
	}
	sess.Cart.Set(id, req.Quantity)
	if !s.saveCart(ctx, w, sess) {
		return
	}
	s.writeCart(ctx, w, sess)
}

// removeCartItemHandler drops a coffee from the cart.
// @Summary Remove from cart
// @Produce json
// @Param id path int true "Coffee ID"
// @Success 200 {object} cartView
// @Security BearerAuth
// @Router /cart/items/{id} [delete]
func (s *server) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "removeCartItemHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	sess, _ := session.FromContext(ctx)
	sess.Cart.Remove(id)
	if !s.saveCart(ctx, w, sess) {
		return
	}
	s.writeCart(ctx, w, sess)
}

// clearCartHandler empties the cart.
// @Summary Clear cart
// @Success 204
// @Security BearerAuth
// @Router /cart [delete]
func (s *server) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "clearCartHandler")
	defer span.End()

	sess, _ := session.FromContext(ctx)
	sess.Cart.Clear()
	if !s.saveCart(ctx, w, sess) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// checkoutHandler places an order for the cart contents and empties the
// cart.
// @Summary Checkout
// @Produce json
// @Success 201 {object} order.Order
// @Failure 400 {string} string
// @Security BearerAuth
// @Router /cart/checkout [post]
func (s *server) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "checkoutHandler")
	defer span.End()

	sess, _ := session.FromContext(ctx)
	if sess.Cart.Len() == 0 {
		http.Error(w, "cart is empty", http.StatusBadRequest)
		return
	}

	o, err := s.engine.PlaceOrder(ctx, sess.AccountID, maps.Collect(sess.Cart.Snapshot()))
	if err != nil {
		s.fail(ctx, w, "place order", err)
		return
	}
	s.log.Info(ctx, "order placed", "order_id", o.ID, "account_id", o.AccountID, "total", o.Total.StringFixed(2), "items", len(o.Items))

	sess.Cart.Clear()
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.log.Error(ctx, "clear cart after checkout", "order_id", o.ID, "error", err)
	}
	writeJSON(w, http.StatusCreated, o)
}

// quickAddHandler is the asynchronous "add to cart" button of the menu.
// @Summary Quick add to cart
// @Accept json
// @Produce json
// @Param item body cartItemRequest true "Coffee"
// @Success 200 {object} quickAddResponse
// @Security BearerAuth
// @Router /api/cart/add [post]
func (s *server) quickAddHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "quickAddHandler")
	defer span.End()

	var req cartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, quickAddResponse{Message: "invalid request body"})
		return
	}
	sess, _ := session.FromContext(ctx)

	c, err := s.orderable(ctx, req.CoffeeID)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeJSON(w, http.StatusNotFound, quickAddResponse{CartCount: sess.Cart.Len(), Message: "Coffee not found"})
		return
	case errors.Is(err, errUnavailable):
		writeJSON(w, http.StatusConflict, quickAddResponse{CartCount: sess.Cart.Len(), Message: c.Name + " is not available"})
		return
	case err != nil:
		s.fail(ctx, w, "get coffee", err)
		return
	}

	if sess.Cart.Quantity(c.ID) >= order.MaxQuantity {
		writeJSON(w, http.StatusBadRequest, quickAddResponse{CartCount: sess.Cart.Len(), Message: tooManyMsg})
		return
	}
	sess.Cart.Add(c.ID)
	if !s.saveCart(ctx, w, sess) {
		return
	}
	writeJSON(w, http.StatusOK, quickAddResponse{
		Success:   true,
		CartCount: sess.Cart.Len(),
		Message:   c.Name + " added to cart",
	})
}

func (s *server) failCart(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, errUnavailable) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	s.fail(ctx, w, "get coffee", err)
}

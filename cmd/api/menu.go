package main

import (
	"net/http"

	"coffeeshop/pkg/catalog"
	"coffeeshop/pkg/otel"
)

// menuHandler lists available coffees grouped by category.
// @Summary Menu
// @Produce json
// @Success 200 {array} catalog.Group
// @Router /menu [get]
func (s *server) menuHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "menuHandler")
	defer span.End()

	coffees, err := s.catalog.ListAvailable(ctx)
	if err != nil {
		s.fail(ctx, w, "list menu", err)
		return
	}
	groups := catalog.GroupByCategory(coffees)
	if groups == nil {
		groups = []catalog.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}

// menuItemHandler returns one available coffee.
// @Summary Menu item
// @Produce json
// @Param id path int true "Coffee ID"
// @Success 200 {object} catalog.Coffee
// @Failure 404 {string} string
// @Router /menu/{id} [get]
func (s *server) menuItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "menuItemHandler")
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
	if !c.Available {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Package http provides http transport for saved sales
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"yardsale/internal/modkit/httpkit"
	"yardsale/internal/platform/net/middleware"
	svc "yardsale/internal/services/api/favorites/service"
)

// Register mounts favorites endpoints on the given router; every route
// needs a bearer token
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/", h.list)
		httpkit.Post(pr, "/{saleId}", h.save)
		httpkit.Delete(pr, "/{saleId}", h.unsave)
	})
}

type handlers struct{ svc svc.Service }

// @Summary List saved sales
// @Tags Favorites
// @Produce json
// @Success 200 {array} domain.Favorite "ok"
// @Security BearerAuth
// @Router /favorites [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), httpkit.MustUser(r), 0)
}

// @Summary Save a sale
// @Tags Favorites
// @Produce json
// @Param saleId path string true "Sale id"
// @Success 200 {object} httpkit.Envelope "ok"
// @Security BearerAuth
// @Router /favorites/{saleId} [post]
func (h *handlers) save(r *stdhttp.Request) (any, error) {
	return nil, h.svc.Save(r.Context(), httpkit.MustUser(r), chi.URLParam(r, "saleId"))
}

// @Summary Remove a saved sale
// @Tags Favorites
// @Produce json
// @Param saleId path string true "Sale id"
// @Success 200 {object} httpkit.Envelope "ok"
// @Security BearerAuth
// @Router /favorites/{saleId} [delete]
func (h *handlers) unsave(r *stdhttp.Request) (any, error) {
	return nil, h.svc.Unsave(r.Context(), httpkit.MustUser(r), chi.URLParam(r, "saleId"))
}

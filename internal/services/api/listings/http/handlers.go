// Package http provides http transport for listings
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"yardsale/internal/modkit/httpkit"
	"yardsale/internal/platform/net/middleware"
	"yardsale/internal/services/api/listings/domain"
	svc "yardsale/internal/services/api/listings/service"
)

// Register mounts listings endpoints on the given router. Reads of
// published listings are public; everything else requires a bearer
// token resolved by the auth port.
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/{id}", h.get)

	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.CreateListingInput](pr, "/", h.create)
		httpkit.PatchJSON[domain.UpdateListingInput](pr, "/{id}", h.update)
		httpkit.Delete(pr, "/{id}", h.remove)
		httpkit.Post(pr, "/{id}/publish", h.publish)
		httpkit.Post(pr, "/{id}/hide", h.hide)
		httpkit.Get(pr, "/mine", h.mine)
	})
}

type handlers struct{ svc svc.Service }

// @Summary Fetch a listing
// @Tags Listings
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} domain.Listing "ok"
// @Failure 404 {object} httpkit.Envelope "unknown or unpublished listing"
// @Router /listings/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	// caller id is empty for anonymous reads; only published rows show
	callerID, _ := httpkit.User(r)
	return h.svc.Get(r.Context(), callerID, chi.URLParam(r, "id"))
}

// @Summary Post a new sale listing
// @Tags Listings
// @Accept json
// @Produce json
// @Param payload body domain.CreateListingInput true "Listing"
// @Success 200 {object} domain.Listing "created draft"
// @Security BearerAuth
// @Router /listings [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateListingInput) (any, error) {
	return h.svc.Create(r.Context(), httpkit.MustUser(r), in)
}

// @Summary Edit a listing
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path string true "Listing id"
// @Param payload body domain.UpdateListingInput true "Partial edits"
// @Success 200 {object} domain.Listing "ok"
// @Security BearerAuth
// @Router /listings/{id} [patch]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateListingInput) (any, error) {
	return h.svc.Update(r.Context(), httpkit.MustUser(r), chi.URLParam(r, "id"), in)
}

// @Summary Delete a listing
// @Tags Listings
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} httpkit.Envelope "ok"
// @Security BearerAuth
// @Router /listings/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	return nil, h.svc.Delete(r.Context(), httpkit.MustUser(r), chi.URLParam(r, "id"))
}

// @Summary Publish a listing
// @Tags Listings
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} domain.Listing "ok"
// @Security BearerAuth
// @Router /listings/{id}/publish [post]
func (h *handlers) publish(r *stdhttp.Request) (any, error) {
	return h.svc.Publish(r.Context(), httpkit.MustUser(r), chi.URLParam(r, "id"))
}

// @Summary Hide a published listing
// @Tags Listings
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} domain.Listing "ok"
// @Security BearerAuth
// @Router /listings/{id}/hide [post]
func (h *handlers) hide(r *stdhttp.Request) (any, error) {
	return h.svc.Hide(r.Context(), httpkit.MustUser(r), chi.URLParam(r, "id"))
}

// @Summary List the caller's listings
// @Tags Listings
// @Produce json
// @Success 200 {array} domain.Listing "ok"
// @Security BearerAuth
// @Router /listings/mine [get]
func (h *handlers) mine(r *stdhttp.Request) (any, error) {
	return h.svc.ListMine(r.Context(), httpkit.MustUser(r), 0)
}

// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package outfit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hypehub/api/internal/platform/middleware"
	requestutil "github.com/hypehub/api/internal/platform/request"
	"github.com/hypehub/api/internal/platform/respond"
)

// Handler implements the outfit HTTP endpoints.
type Handler struct {
	outfitService *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{outfitService: service}
}

// Routes returns a [chi.Router] configured with outfit routes.
//
// # Endpoints
//   - GET  /{id}     : Outfit with images and item ids.
//   - POST /images   : Attach image (bearer, owner).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}", handler.get)
	router.With(middleware.RequireAuth).Post("/images", handler.createImage)

	return router
}

type imageRequest struct {
	OutfitID string `json:"outfitId"`
	URL      string `json:"url"`
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.outfitService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

/*
CreateImage attaches an image URL to an outfit.

POST /api/v1/outfits/images

Response:
  - 201: Image
  - 400: Validation failure, including an unknown outfitId
  - 401: Not authenticated
  - 403: Not the owner
*/
func (handler *Handler) createImage(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload imageRequest
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	image, err := handler.outfitService.AddImage(request.Context(), claims, ImageInput{OutfitID: payload.OutfitID, URL: payload.URL})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, image)
}

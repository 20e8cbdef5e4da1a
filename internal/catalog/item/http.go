// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hypehub/api/internal/platform/middleware"
	requestutil "github.com/hypehub/api/internal/platform/request"
	"github.com/hypehub/api/internal/platform/respond"
)

// Handler implements the item HTTP endpoints.
type Handler struct {
	itemService *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{itemService: service}
}

// Routes returns a [chi.Router] configured with item routes.
//
// # Endpoints
//   - GET    /{id}                : Item with images.
//   - GET    /{id}/in-outfit      : Whether any outfit uses the item.
//   - GET    /images/{imageId}    : Single image.
//   - POST   /                    : Create item (bearer).
//   - PUT    /{id}                : Update item (bearer, owner).
//   - DELETE /{id}                : Delete item (bearer, owner).
//   - POST   /images              : Attach image (bearer, owner).
//   - DELETE /images/{imageId}    : Remove image (bearer, owner).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/images/{imageId}", handler.getImage)
	router.Get("/{id}", handler.get)
	router.Get("/{id}/in-outfit", handler.inOutfit)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
		r.Post("/images", handler.createImage)
		r.Delete("/images/{imageId}", handler.deleteImage)
	})

	return router
}

// # Request Payloads

type itemRequest struct {
	Name         string  `json:"name"`
	ClothingType string  `json:"clothingType"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Colorway     string  `json:"colorway"`
	Price        float64 `json:"price"`
	PurchaseDate string  `json:"purchaseDate"`
}

func (request itemRequest) input() Input {
	return Input{
		Name:         request.Name,
		ClothingType: request.ClothingType,
		Brand:        request.Brand,
		Model:        request.Model,
		Colorway:     request.Colorway,
		Price:        request.Price,
		PurchaseDate: request.PurchaseDate,
	}
}

type createItemRequest struct {
	itemRequest
	Images []string `json:"images"`
}

type imageRequest struct {
	ItemID string `json:"itemId"`
	URL    string `json:"url"`
}

// # Handlers

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.itemService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) inOutfit(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	used, err := handler.itemService.IsInOutfit(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, used)
}

/*
Create stores a new item for the caller.

POST /api/v1/items

Response:
  - 201: Item
  - 400: Bad input or validation failure
  - 401: Not authenticated
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload createItemRequest
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.itemService.Create(request.Context(), claims, CreateInput{
		Input:  payload.input(),
		Images: payload.Images,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

/*
Update overwrites an item.

PUT /api/v1/items/{id}

Response:
  - 200: Item
  - 400: Bad input or validation failure
  - 403: Not the owner
  - 404: Unknown item
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	id, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload itemRequest
	if err := requestutil.DecodeJSON(writer, request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.itemService.Update(request.Context(), claims, id, payload.input())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	id, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.itemService.Delete(request.Context(), claims, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) getImage(writer http.ResponseWriter, request *http.Request) {
	imageID, err := requestutil.UUIDParam(request, "imageId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	image, err := handler.itemService.GetImage(request.Context(), imageID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, image)
}

/*
CreateImage attaches an image URL to an item.

POST /api/v1/items/images

Response:
  - 201: Image
  - 400: Validation failure, including an unknown itemId
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

	image, err := handler.itemService.AddImage(request.Context(), claims, ImageInput{ItemID: payload.ItemID, URL: payload.URL})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, image)
}

func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	imageID, err := requestutil.UUIDParam(request, "imageId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.itemService.DeleteImage(request.Context(), claims, imageID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

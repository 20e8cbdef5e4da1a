// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypehub/api/internal/platform/apperr"
)

func createSneaker(t *testing.T, service *Service, images ...string) *Item {
	t.Helper()
	created, err := service.Create(context.Background(), owner, CreateInput{
		Input: Input{
			Name:         "Air Max 90",
			ClothingType: "Sneakers",
			Brand:        "Nike",
			Colorway:     "Infrared",
			Price:        129.99,
			PurchaseDate: "2025-11-02",
		},
		Images: images,
	})
	require.NoError(t, err)
	return created
}

func TestService_CreateWithImages(t *testing.T) {
	service, _ := newTestService()

	created := createSneaker(t, service, "https://cdn.example.com/a.png", "cdn.example.com/b.jpg")

	assert.Equal(t, owner.UserID, created.AccountID)
	require.NotNil(t, created.PurchaseDate)
	assert.Equal(t, "2025-11-02", created.PurchaseDate.Format("2006-01-02"))
	require.Len(t, created.Images, 2)
	for _, image := range created.Images {
		assert.Equal(t, created.ID, image.ItemID)
	}

	found, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, found.Images, 2)
}

func TestService_CreateValidation(t *testing.T) {
	service, repository := newTestService()

	_, err := service.Create(context.Background(), owner, CreateInput{
		Input: Input{
			Name:         strings.Repeat("x", NameMaxLength+1),
			Price:        -1,
			PurchaseDate: "yesterday",
		},
		Images: []string{"not a url", "https://cdn.example.com/" + strings.Repeat("a", URLMaxLength)},
	})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.KindValidationFailed, appError.Kind)
	assert.Equal(t, []string{
		"name must not have more than 100 characters.",
		"price must not be negative.",
		"purchaseDate must be a date in YYYY-MM-DD format.",
		"images[0] is not in a valid format.",
		"images[1] must not have more than 400 characters.",
	}, appError.Details)
	assert.Empty(t, repository.items)
}

func TestService_GetUnknown(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Get(context.Background(), "0190a1b2-0000-7000-8000-0000000000ff")

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.KindNotFound, appError.Kind)
	assert.Equal(t, "There is no item with the given Id: 0190a1b2-0000-7000-8000-0000000000ff.", appError.Message)
}

func TestService_GetStoreFailure(t *testing.T) {
	service, repository := newTestService()
	repository.failWith = errors.New("connection reset")

	_, err := service.Get(context.Background(), "0190a1b2-0000-7000-8000-0000000000ff")

	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestService_UpdateOwnership(t *testing.T) {
	service, _ := newTestService()
	created := createSneaker(t, service)
	input := Input{Name: "Air Max 1", Brand: "Nike", Price: 150}

	_, err := service.Update(context.Background(), stranger, created.ID, input)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	updated, err := service.Update(context.Background(), owner, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Air Max 1", updated.Name)
	assert.Nil(t, updated.PurchaseDate)

	_, err = service.Update(context.Background(), admin, created.ID, Input{Name: "Air Max 95"})
	require.NoError(t, err)

	found, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Air Max 95", found.Name)
}

func TestService_Delete(t *testing.T) {
	service, _ := newTestService()
	created := createSneaker(t, service, "https://cdn.example.com/a.png")

	err := service.Delete(context.Background(), stranger, created.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	require.NoError(t, service.Delete(context.Background(), owner, created.ID))

	_, err = service.Get(context.Background(), created.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	_, err = service.GetImage(context.Background(), created.Images[0].ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestService_AddImage(t *testing.T) {
	service, _ := newTestService()
	created := createSneaker(t, service)

	t.Run("success", func(t *testing.T) {
		image, err := service.AddImage(context.Background(), owner, ImageInput{
			ItemID: strings.ToUpper(created.ID),
			URL:    "https://cdn.example.com/side.png",
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, image.ItemID)
		assert.Equal(t, fixedNow, image.CreatedAt)
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, err := service.AddImage(context.Background(), owner, ImageInput{})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, []string{"itemId must have a value.", "url must have a value."}, appError.Details)
	})

	t.Run("malformed_item_id", func(t *testing.T) {
		_, err := service.AddImage(context.Background(), owner, ImageInput{ItemID: "42", URL: "https://cdn.example.com/a.png"})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, []string{"itemId must be a valid UUID."}, appError.Details)
	})

	t.Run("unknown_item", func(t *testing.T) {
		_, err := service.AddImage(context.Background(), owner, ImageInput{
			ItemID: "0190a1b2-0000-7000-8000-0000000000ff",
			URL:    "https://cdn.example.com/a.png",
		})
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, apperr.KindValidationFailed, appError.Kind)
		assert.Equal(t, []string{"There is no item with the given Id."}, appError.Details)
	})

	t.Run("not_owner", func(t *testing.T) {
		_, err := service.AddImage(context.Background(), stranger, ImageInput{ItemID: created.ID, URL: "https://cdn.example.com/a.png"})
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})
}

func TestService_DeleteImage(t *testing.T) {
	service, _ := newTestService()
	created := createSneaker(t, service, "https://cdn.example.com/a.png")
	imageID := created.Images[0].ID

	err := service.DeleteImage(context.Background(), stranger, imageID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	require.NoError(t, service.DeleteImage(context.Background(), owner, imageID))

	err = service.DeleteImage(context.Background(), owner, imageID)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "There is no item image with the given Id: "+imageID+".", appError.Message)
}

func TestService_IsInOutfit(t *testing.T) {
	service, repository := newTestService()
	created := createSneaker(t, service)

	used, err := service.IsInOutfit(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, used)

	repository.inOutfit[created.ID] = true
	used, err = service.IsInOutfit(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, used)

	_, err = service.IsInOutfit(context.Background(), "0190a1b2-0000-7000-8000-0000000000ff")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

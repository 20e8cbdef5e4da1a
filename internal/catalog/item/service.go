// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hypehub/api/internal/platform/apperr"
	"github.com/hypehub/api/internal/platform/sec"
	"github.com/hypehub/api/internal/platform/validate"
	"github.com/hypehub/api/pkg/uuid"
)

// Service implements the item catalog use cases.
type Service struct {
	repository Repository
	now        func() time.Time
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository, now: time.Now}
}

// # Inputs

// Input carries the descriptive fields of an item.
type Input struct {
	Name         string
	ClothingType string
	Brand        string
	Model        string
	Colorway     string
	Price        float64
	PurchaseDate string
}

// CreateInput is an [Input] plus the image URLs to attach.
type CreateInput struct {
	Input
	Images []string
}

// ImageInput names an item and the URL of a picture for it.
type ImageInput struct {
	ItemID string
	URL    string
}

func (input Input) validate(v *validate.Validator) (*time.Time, *validate.Validator) {
	v.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, NameMaxLength).
		MaxLen(FieldClothingType, input.ClothingType, ClothingTypeMaxLength).
		MaxLen(FieldBrand, input.Brand, DetailMaxLength).
		MaxLen(FieldModel, input.Model, DetailMaxLength).
		MaxLen(FieldColorway, input.Colorway, DetailMaxLength).
		NonNegative(FieldPrice, input.Price)

	if input.PurchaseDate == "" {
		return nil, v
	}
	date, err := time.Parse(time.DateOnly, input.PurchaseDate)
	v.Custom(FieldPurchaseDate, err != nil, "must be a date in YYYY-MM-DD format")
	if err != nil {
		return nil, v
	}
	return &date, v
}

func validateURL(v *validate.Validator, field, url string) *validate.Validator {
	if url == "" {
		return v.Required(field, url)
	}
	return v.MaxLen(field, url, URLMaxLength).URL(field, url)
}

// # Items

/*
Get returns an item with its images.

Returns:
  - *Item: The item
  - error: NotFound if no item has the id
*/
func (service *Service) Get(context context.Context, id string) (*Item, error) {
	found, err := service.repository.FindByID(context, id)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.NotFound(fmt.Sprintf("There is no item with the given Id: %s.", id))
		}
		return nil, fmt.Errorf("item_service_get_failed: %w", err)
	}
	return found, nil
}

/*
Create validates and stores a new item owned by the caller.

Description: Every URL in input.Images becomes an image of the new item.
The item and its images are written together or not at all.

Returns:
  - *Item: The created item including its images
  - error: ValidationFailed, or store failures
*/
func (service *Service) Create(context context.Context, actor *sec.AuthClaims, input CreateInput) (*Item, error) {
	purchaseDate, v := input.Input.validate(&validate.Validator{})
	for index, url := range input.Images {
		validateURL(v, fmt.Sprintf("images[%d]", index), url)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	now := service.now().UTC()
	created := &Item{
		ID:           uuid.New(),
		AccountID:    actor.UserID,
		Name:         strings.TrimSpace(input.Name),
		ClothingType: input.ClothingType,
		Brand:        input.Brand,
		Model:        input.Model,
		Colorway:     input.Colorway,
		Price:        input.Price,
		PurchaseDate: purchaseDate,
		Images:       make([]Image, 0, len(input.Images)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, url := range input.Images {
		created.Images = append(created.Images, Image{ID: uuid.New(), ItemID: created.ID, URL: url, CreatedAt: now})
	}

	if err := service.repository.Create(context, created); err != nil {
		return nil, fmt.Errorf("item_service_create_failed: %w", err)
	}
	return created, nil
}

/*
Update overwrites the descriptive fields of an item.

Returns:
  - *Item: The updated item
  - error: ValidationFailed, NotFound, Forbidden or store failures
*/
func (service *Service) Update(context context.Context, actor *sec.AuthClaims, id string, input Input) (*Item, error) {
	purchaseDate, v := input.validate(&validate.Validator{})
	if err := v.Err(); err != nil {
		return nil, err
	}

	existing, err := service.owned(context, actor, id)
	if err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.ClothingType = input.ClothingType
	existing.Brand = input.Brand
	existing.Model = input.Model
	existing.Colorway = input.Colorway
	existing.Price = input.Price
	existing.PurchaseDate = purchaseDate
	existing.UpdatedAt = service.now().UTC()

	if err := service.repository.Update(context, existing); err != nil {
		return nil, fmt.Errorf("item_service_update_failed: %w", err)
	}
	return existing, nil
}

// Delete removes an item owned by the caller.
func (service *Service) Delete(context context.Context, actor *sec.AuthClaims, id string) error {
	if _, err := service.owned(context, actor, id); err != nil {
		return err
	}
	if err := service.repository.Delete(context, id); err != nil {
		return fmt.Errorf("item_service_delete_failed: %w", err)
	}
	return nil
}

// IsInOutfit reports whether the item is part of any outfit.
func (service *Service) IsInOutfit(context context.Context, id string) (bool, error) {
	if _, err := service.Get(context, id); err != nil {
		return false, err
	}
	inOutfit, err := service.repository.IsInOutfit(context, id)
	if err != nil {
		return false, fmt.Errorf("item_service_is_in_outfit_failed: %w", err)
	}
	return inOutfit, nil
}

// owned loads the item and checks the caller may manage it.
func (service *Service) owned(context context.Context, actor *sec.AuthClaims, id string) (*Item, error) {
	existing, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(existing.AccountID) {
		return nil, apperr.Forbidden("You can only manage your own items.")
	}
	return existing, nil
}

// # Images

// GetImage returns a single item image.
func (service *Service) GetImage(context context.Context, imageID string) (*Image, error) {
	image, err := service.repository.FindImage(context, imageID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.NotFound(fmt.Sprintf("There is no item image with the given Id: %s.", imageID))
		}
		return nil, fmt.Errorf("item_service_get_image_failed: %w", err)
	}
	return image, nil
}

/*
AddImage attaches a picture to an item owned by the caller.

Description: An unknown item is reported as a validation failure of the
itemId field rather than as NotFound.

Returns:
  - *Image: The created image
  - error: ValidationFailed, Forbidden or store failures
*/
func (service *Service) AddImage(context context.Context, actor *sec.AuthClaims, input ImageInput) (*Image, error) {
	v := &validate.Validator{}
	if input.ItemID == "" {
		v.Required(FieldItemID, input.ItemID)
	} else {
		v.UUID(FieldItemID, input.ItemID)
	}
	if err := validateURL(v, FieldURL, input.URL).Err(); err != nil {
		return nil, err
	}

	itemID := strings.ToLower(input.ItemID)
	target, err := service.repository.FindByID(context, itemID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.ValidationFailed("Validation failed", "There is no item with the given Id.")
		}
		return nil, fmt.Errorf("item_service_add_image_failed: %w", err)
	}
	if !actor.CanManage(target.AccountID) {
		return nil, apperr.Forbidden("You can only manage your own items.")
	}

	image := &Image{ID: uuid.New(), ItemID: itemID, URL: input.URL, CreatedAt: service.now().UTC()}
	if err := service.repository.CreateImage(context, image); err != nil {
		return nil, fmt.Errorf("item_service_add_image_failed: %w", err)
	}
	return image, nil
}

// DeleteImage removes an image from an item owned by the caller.
func (service *Service) DeleteImage(context context.Context, actor *sec.AuthClaims, imageID string) error {
	image, err := service.GetImage(context, imageID)
	if err != nil {
		return err
	}
	if _, err := service.owned(context, actor, image.ItemID); err != nil {
		return err
	}
	if err := service.repository.DeleteImage(context, imageID); err != nil {
		return fmt.Errorf("item_service_delete_image_failed: %w", err)
	}
	return nil
}

// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package outfit

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

// Service implements the outfit use cases.
type Service struct {
	repository Repository
	now        func() time.Time
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository, now: time.Now}
}

// ImageInput names an outfit and the URL of a picture for it.
type ImageInput struct {
	OutfitID string
	URL      string
}

// Get returns an outfit with its images and item ids.
func (service *Service) Get(context context.Context, id string) (*Outfit, error) {
	found, err := service.repository.FindByID(context, id)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.NotFound(fmt.Sprintf("There is no outfit with the given Id: %s.", id))
		}
		return nil, fmt.Errorf("outfit_service_get_failed: %w", err)
	}
	return found, nil
}

/*
AddImage attaches a picture to an outfit owned by the caller.

Returns:
  - *Image: The created image
  - error: ValidationFailed (including an unknown outfit), Forbidden or store failures
*/
func (service *Service) AddImage(context context.Context, actor *sec.AuthClaims, input ImageInput) (*Image, error) {
	v := &validate.Validator{}
	if input.OutfitID == "" {
		v.Required(FieldOutfitID, input.OutfitID)
	} else {
		v.UUID(FieldOutfitID, input.OutfitID)
	}
	if input.URL == "" {
		v.Required(FieldURL, input.URL)
	} else {
		v.MaxLen(FieldURL, input.URL, URLMaxLength).URL(FieldURL, input.URL)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	outfitID := strings.ToLower(input.OutfitID)
	target, err := service.repository.FindByID(context, outfitID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.ValidationFailed("Validation failed", "There is no outfit with the given Id.")
		}
		return nil, fmt.Errorf("outfit_service_add_image_failed: %w", err)
	}
	if !actor.CanManage(target.AccountID) {
		return nil, apperr.Forbidden("You can only manage your own outfits.")
	}

	image := &Image{ID: uuid.New(), OutfitID: outfitID, URL: input.URL, CreatedAt: service.now().UTC()}
	if err := service.repository.CreateImage(context, image); err != nil {
		return nil, fmt.Errorf("outfit_service_add_image_failed: %w", err)
	}
	return image, nil
}

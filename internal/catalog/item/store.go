// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import "context"

// Repository is the persistence contract for items and their images.
//
// Lookups return an apperr NotFound when the row does not exist.
type Repository interface {
	// FindByID returns the item with its images, oldest first.
	FindByID(context context.Context, id string) (*Item, error)

	// Create inserts the item and all of its images atomically.
	Create(context context.Context, item *Item) error

	// Update overwrites the descriptive columns of the item.
	Update(context context.Context, item *Item) error

	// Delete removes the item. Images and outfit links cascade.
	Delete(context context.Context, id string) error

	// FindImage returns a single image.
	FindImage(context context.Context, imageID string) (*Image, error)

	// CreateImage attaches an image to an existing item.
	CreateImage(context context.Context, image *Image) error

	// DeleteImage removes a single image.
	DeleteImage(context context.Context, imageID string) error

	// IsInOutfit reports whether any outfit references the item.
	IsInOutfit(context context.Context, itemID string) (bool, error)
}

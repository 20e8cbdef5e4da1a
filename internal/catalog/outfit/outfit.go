// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package outfit exposes outfits: named groups of catalog items with pictures.
package outfit

import (
	"context"
	"time"
)

// Outfit groups items of one account.
type Outfit struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	Name      string    `json:"name"`
	Images    []Image   `json:"images"`
	ItemIDs   []string  `json:"itemIds"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Image is a picture URL attached to an outfit.
type Image struct {
	ID        string    `json:"id"`
	OutfitID  string    `json:"outfitId"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	FieldOutfitID = "outfitId"
	FieldURL      = "url"

	URLMaxLength = 400

	outfitNotFound = "Outfit not found."
)

// Repository is the persistence contract for outfits.
type Repository interface {
	// FindByID returns the outfit with its images and item ids.
	FindByID(context context.Context, id string) (*Outfit, error)

	// CreateImage attaches an image to an existing outfit.
	CreateImage(context context.Context, image *Image) error
}

// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package item manages the clothing items members keep in their catalog.

An item belongs to exactly one account. Only the owner (or an administrator)
may change it, attach images to it, or delete it. Reads are public.
*/
package item

import "time"

// # Core Entities

// Item is a single piece of clothing in a member's catalog.
type Item struct {
	ID           string     `json:"id"`
	AccountID    string     `json:"accountId"`
	Name         string     `json:"name"`
	ClothingType string     `json:"clothingType"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	Colorway     string     `json:"colorway"`
	Price        float64    `json:"price"`
	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`
	Images       []Image    `json:"images"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Image is a picture URL attached to an item.
type Image struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}


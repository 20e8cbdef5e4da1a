// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

// # Field Identifiers

const (
	FieldItemID       = "itemId"
	FieldName         = "name"
	FieldClothingType = "clothingType"
	FieldBrand        = "brand"
	FieldModel        = "model"
	FieldColorway     = "colorway"
	FieldPrice        = "price"
	FieldPurchaseDate = "purchaseDate"
	FieldURL          = "url"
)

// # Limits

const (
	NameMaxLength         = 100
	ClothingTypeMaxLength = 50
	DetailMaxLength       = 100
	URLMaxLength          = 400
)

const (
	itemNotFound  = "Item not found."
	imageNotFound = "Item image not found."
)

// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogItemTable represents the 'catalog.item' table
type CatalogItemTable struct {
	Table        string
	ID           string
	AccountID    string
	Name         string
	ClothingType string
	Brand        string
	Model        string
	Colorway     string
	Price        string
	PurchaseDate string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogItem is the schema definition for catalog.item
var CatalogItem = CatalogItemTable{
	Table:        "catalog.item",
	ID:           "id",
	AccountID:    "accountid",
	Name:         "name",
	ClothingType: "clothingtype",
	Brand:        "brand",
	Model:        "model",
	Colorway:     "colorway",
	Price:        "price",
	PurchaseDate: "purchasedate",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t CatalogItemTable) Columns() []string {
	return []string{
		t.ID, t.AccountID, t.Name, t.ClothingType, t.Brand, t.Model,
		t.Colorway, t.Price, t.PurchaseDate, t.CreatedAt, t.UpdatedAt,
	}
}

// CatalogItemImageTable represents the 'catalog.itemimage' table
type CatalogItemImageTable struct {
	Table     string
	ID        string
	ItemID    string
	URL       string
	CreatedAt string
}

// CatalogItemImage is the schema definition for catalog.itemimage
var CatalogItemImage = CatalogItemImageTable{
	Table:     "catalog.itemimage",
	ID:        "id",
	ItemID:    "itemid",
	URL:       "url",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t CatalogItemImageTable) Columns() []string {
	return []string{t.ID, t.ItemID, t.URL, t.CreatedAt}
}

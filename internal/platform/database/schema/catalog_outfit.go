// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogOutfitTable represents the 'catalog.outfit' table
type CatalogOutfitTable struct {
	Table     string
	ID        string
	AccountID string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// CatalogOutfit is the schema definition for catalog.outfit
var CatalogOutfit = CatalogOutfitTable{
	Table:     "catalog.outfit",
	ID:        "id",
	AccountID: "accountid",
	Name:      "name",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t CatalogOutfitTable) Columns() []string {
	return []string{t.ID, t.AccountID, t.Name, t.CreatedAt, t.UpdatedAt}
}

// CatalogOutfitImageTable represents the 'catalog.outfitimage' table
type CatalogOutfitImageTable struct {
	Table     string
	ID        string
	OutfitID  string
	URL       string
	CreatedAt string
}

// CatalogOutfitImage is the schema definition for catalog.outfitimage
var CatalogOutfitImage = CatalogOutfitImageTable{
	Table:     "catalog.outfitimage",
	ID:        "id",
	OutfitID:  "outfitid",
	URL:       "url",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t CatalogOutfitImageTable) Columns() []string {
	return []string{t.ID, t.OutfitID, t.URL, t.CreatedAt}
}

// CatalogOutfitItemTable represents the 'catalog.outfititem' join table
type CatalogOutfitItemTable struct {
	Table    string
	OutfitID string
	ItemID   string
}

// CatalogOutfitItem is the schema definition for catalog.outfititem
var CatalogOutfitItem = CatalogOutfitItemTable{
	Table:    "catalog.outfititem",
	OutfitID: "outfitid",
	ItemID:   "itemid",
}

// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package outfit

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hypehub/api/internal/platform/database/schema"
	"github.com/hypehub/api/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on the catalog.outfit tables.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
FindByID retrieves the outfit, its images and the ids of its items.

Returns:
  - *Outfit: The outfit
  - error: NotFound if no outfit has the id, or database errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Outfit, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.CatalogOutfit.Columns(), ", "),
		schema.CatalogOutfit.Table,
		schema.CatalogOutfit.ID,
	)

	outfit := &Outfit{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&outfit.ID,
		&outfit.AccountID,
		&outfit.Name,
		&outfit.CreatedAt,
		&outfit.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "outfit_repository_find_by_id", outfitNotFound)
	}

	imagesQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s, %s`,
		strings.Join(schema.CatalogOutfitImage.Columns(), ", "),
		schema.CatalogOutfitImage.Table,
		schema.CatalogOutfitImage.OutfitID,
		schema.CatalogOutfitImage.CreatedAt,
		schema.CatalogOutfitImage.ID,
	)
	rows, err := repository.pool.Query(context, imagesQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "outfit_repository_list_images", outfitNotFound)
	}
	if outfit.Images, err = pgx.CollectRows(rows, pgx.RowToStructByPos[Image]); err != nil {
		return nil, dberr.Wrap(err, "outfit_repository_scan_images", outfitNotFound)
	}

	itemsQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		schema.CatalogOutfitItem.ItemID,
		schema.CatalogOutfitItem.Table,
		schema.CatalogOutfitItem.OutfitID,
		schema.CatalogOutfitItem.ItemID,
	)
	rows, err = repository.pool.Query(context, itemsQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "outfit_repository_list_items", outfitNotFound)
	}
	if outfit.ItemIDs, err = pgx.CollectRows(rows, pgx.RowTo[string]); err != nil {
		return nil, dberr.Wrap(err, "outfit_repository_scan_items", outfitNotFound)
	}

	return outfit, nil
}

// CreateImage implements [Repository].
func (repository *PostgresRepository) CreateImage(context context.Context, image *Image) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4)`,
		schema.CatalogOutfitImage.Table,
		strings.Join(schema.CatalogOutfitImage.Columns(), ", "),
	)

	if _, err := repository.pool.Exec(context, query, image.ID, image.OutfitID, image.URL, image.CreatedAt); err != nil {
		return dberr.Wrap(err, "outfit_repository_create_image", outfitNotFound)
	}
	return nil
}

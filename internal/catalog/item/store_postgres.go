// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hypehub/api/internal/platform/database/schema"
	"github.com/hypehub/api/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on catalog.item and catalog.itemimage.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// # Items

/*
FindByID retrieves the item and its images.

Returns:
  - *Item: The item with images ordered by creation time
  - error: NotFound if no item has the id, or database errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.CatalogItem.Columns(), ", "),
		schema.CatalogItem.Table,
		schema.CatalogItem.ID,
	)

	item := &Item{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&item.ID,
		&item.AccountID,
		&item.Name,
		&item.ClothingType,
		&item.Brand,
		&item.Model,
		&item.Colorway,
		&item.Price,
		&item.PurchaseDate,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "item_repository_find_by_id", itemNotFound)
	}

	images, err := repository.listImages(context, id)
	if err != nil {
		return nil, err
	}
	item.Images = images
	return item, nil
}

func (repository *PostgresRepository) listImages(context context.Context, itemID string) ([]Image, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s, %s`,
		strings.Join(schema.CatalogItemImage.Columns(), ", "),
		schema.CatalogItemImage.Table,
		schema.CatalogItemImage.ItemID,
		schema.CatalogItemImage.CreatedAt,
		schema.CatalogItemImage.ID,
	)

	rows, err := repository.pool.Query(context, query, itemID)
	if err != nil {
		return nil, dberr.Wrap(err, "item_repository_list_images", itemNotFound)
	}

	images, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Image])
	if err != nil {
		return nil, dberr.Wrap(err, "item_repository_scan_images", itemNotFound)
	}
	return images, nil
}

/*
Create inserts the item and its images in one transaction.

Returns:
  - error: NotFound if the owning account vanished, or database errors
*/
func (repository *PostgresRepository) Create(context context.Context, item *Item) error {
	return pgx.BeginFunc(context, repository.pool, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`
			INSERT INTO %s (%s)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			schema.CatalogItem.Table,
			strings.Join(schema.CatalogItem.Columns(), ", "),
		)

		if _, err := tx.Exec(context, query,
			item.ID,
			item.AccountID,
			item.Name,
			item.ClothingType,
			item.Brand,
			item.Model,
			item.Colorway,
			item.Price,
			item.PurchaseDate,
			item.CreatedAt,
			item.UpdatedAt,
		); err != nil {
			return dberr.Wrap(err, "item_repository_create", "Account not found.")
		}

		if len(item.Images) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, image := range item.Images {
			batch.Queue(insertImageQuery(), image.ID, image.ItemID, image.URL, image.CreatedAt)
		}
		if err := tx.SendBatch(context, batch).Close(); err != nil {
			return dberr.Wrap(err, "item_repository_create_images", itemNotFound)
		}
		return nil
	})
}

// Update implements [Repository].
func (repository *PostgresRepository) Update(context context.Context, item *Item) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9
		WHERE %s = $1`,
		schema.CatalogItem.Table,
		schema.CatalogItem.Name,
		schema.CatalogItem.ClothingType,
		schema.CatalogItem.Brand,
		schema.CatalogItem.Model,
		schema.CatalogItem.Colorway,
		schema.CatalogItem.Price,
		schema.CatalogItem.PurchaseDate,
		schema.CatalogItem.UpdatedAt,
		schema.CatalogItem.ID,
	)

	tag, err := repository.pool.Exec(context, query,
		item.ID,
		item.Name,
		item.ClothingType,
		item.Brand,
		item.Model,
		item.Colorway,
		item.Price,
		item.PurchaseDate,
		item.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "item_repository_update", itemNotFound)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "item_repository_update", itemNotFound)
	}
	return nil
}

// Delete implements [Repository].
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogItem.Table, schema.CatalogItem.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "item_repository_delete", itemNotFound)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "item_repository_delete", itemNotFound)
	}
	return nil
}

// IsInOutfit implements [Repository].
func (repository *PostgresRepository) IsInOutfit(context context.Context, itemID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CatalogOutfitItem.Table, schema.CatalogOutfitItem.ItemID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, itemID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "item_repository_is_in_outfit", itemNotFound)
	}
	return exists, nil
}

// # Images

func insertImageQuery() string {
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4)`,
		schema.CatalogItemImage.Table,
		strings.Join(schema.CatalogItemImage.Columns(), ", "),
	)
}

// FindImage implements [Repository].
func (repository *PostgresRepository) FindImage(context context.Context, imageID string) (*Image, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.CatalogItemImage.Columns(), ", "),
		schema.CatalogItemImage.Table,
		schema.CatalogItemImage.ID,
	)

	image := &Image{}
	err := repository.pool.QueryRow(context, query, imageID).Scan(&image.ID, &image.ItemID, &image.URL, &image.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "item_repository_find_image", imageNotFound)
	}
	return image, nil
}

// CreateImage implements [Repository].
func (repository *PostgresRepository) CreateImage(context context.Context, image *Image) error {
	if _, err := repository.pool.Exec(context, insertImageQuery(), image.ID, image.ItemID, image.URL, image.CreatedAt); err != nil {
		return dberr.Wrap(err, "item_repository_create_image", itemNotFound)
	}
	return nil
}

// DeleteImage implements [Repository].
func (repository *PostgresRepository) DeleteImage(context context.Context, imageID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogItemImage.Table, schema.CatalogItemImage.ID)

	tag, err := repository.pool.Exec(context, query, imageID)
	if err != nil {
		return dberr.Wrap(err, "item_repository_delete_image", imageNotFound)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "item_repository_delete_image", imageNotFound)
	}
	return nil
}

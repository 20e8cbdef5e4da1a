// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package item

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypehub/api/internal/platform/apperr"
	"github.com/hypehub/api/internal/platform/postgres/postgrestest"
	"github.com/hypehub/api/pkg/uuid"
)

func TestPostgresRepository_ItemLifecycle(t *testing.T) {
	ctx := context.Background()
	pool := postgrestest.Start(t)
	repository := NewPostgresRepository(pool)

	accountID := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO users.account (id, username, email, passwordhash) VALUES ($1, 'alice', 'alice@example.com', 'x')`,
		accountID)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	purchased := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
	created := &Item{
		ID:           uuid.New(),
		AccountID:    accountID,
		Name:         "Air Max 90",
		Brand:        "Nike",
		Price:        129.99,
		PurchaseDate: &purchased,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created.Images = []Image{
		{ID: uuid.New(), ItemID: created.ID, URL: "https://cdn.example.com/a.png", CreatedAt: now},
		{ID: uuid.New(), ItemID: created.ID, URL: "https://cdn.example.com/b.png", CreatedAt: now.Add(time.Second)},
	}
	require.NoError(t, repository.Create(ctx, created))

	found, err := repository.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Air Max 90", found.Name)
	assert.InDelta(t, 129.99, found.Price, 0.001)
	require.NotNil(t, found.PurchaseDate)
	assert.True(t, purchased.Equal(*found.PurchaseDate))
	require.Len(t, found.Images, 2)
	assert.Equal(t, created.Images[0].ID, found.Images[0].ID)

	found.Name = "Air Max 1"
	require.NoError(t, repository.Update(ctx, found))

	inOutfit, err := repository.IsInOutfit(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, inOutfit)

	outfitID := uuid.New()
	_, err = pool.Exec(ctx, `INSERT INTO catalog.outfit (id, accountid, name) VALUES ($1, $2, 'Weekend')`, outfitID, accountID)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO catalog.outfititem (outfitid, itemid) VALUES ($1, $2)`, outfitID, created.ID)
	require.NoError(t, err)

	inOutfit, err = repository.IsInOutfit(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, inOutfit)

	require.NoError(t, repository.DeleteImage(ctx, created.Images[0].ID))
	_, err = repository.FindImage(ctx, created.Images[0].ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, repository.Delete(ctx, created.ID))
	_, err = repository.FindByID(ctx, created.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	_, err = repository.FindImage(ctx, created.Images[1].ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(repository.Delete(ctx, created.ID)))
}

func TestPostgresRepository_CreateForUnknownAccount(t *testing.T) {
	repository := NewPostgresRepository(postgrestest.Start(t))

	err := repository.Create(context.Background(), &Item{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Name:      "Orphan",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"sync"
	"time"

	"github.com/hypehub/api/internal/platform/apperr"
	"github.com/hypehub/api/internal/platform/sec"
)

// # In-memory Repository

type memoryRepository struct {
	mu       sync.Mutex
	items    map[string]Item
	images   map[string]Image
	inOutfit map[string]bool
	failWith error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		items:    make(map[string]Item),
		images:   make(map[string]Image),
		inOutfit: make(map[string]bool),
	}
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*Item, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failWith != nil {
		return nil, repository.failWith
	}
	found, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound(itemNotFound)
	}
	found.Images = nil
	for _, image := range repository.images {
		if image.ItemID == id {
			found.Images = append(found.Images, image)
		}
	}
	return &found, nil
}

func (repository *memoryRepository) Create(_ context.Context, item *Item) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failWith != nil {
		return repository.failWith
	}
	stored := *item
	stored.Images = nil
	repository.items[item.ID] = stored
	for _, image := range item.Images {
		repository.images[image.ID] = image
	}
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, item *Item) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[item.ID]; !ok {
		return apperr.NotFound(itemNotFound)
	}
	stored := *item
	stored.Images = nil
	repository.items[item.ID] = stored
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return apperr.NotFound(itemNotFound)
	}
	delete(repository.items, id)
	for imageID, image := range repository.images {
		if image.ItemID == id {
			delete(repository.images, imageID)
		}
	}
	return nil
}

func (repository *memoryRepository) FindImage(_ context.Context, imageID string) (*Image, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	image, ok := repository.images[imageID]
	if !ok {
		return nil, apperr.NotFound(imageNotFound)
	}
	return &image, nil
}

func (repository *memoryRepository) CreateImage(_ context.Context, image *Image) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.images[image.ID] = *image
	return nil
}

func (repository *memoryRepository) DeleteImage(_ context.Context, imageID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.images[imageID]; !ok {
		return apperr.NotFound(imageNotFound)
	}
	delete(repository.images, imageID)
	return nil
}

func (repository *memoryRepository) IsInOutfit(_ context.Context, itemID string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	return repository.inOutfit[itemID], nil
}

// # Fixture

var (
	owner    = &sec.AuthClaims{UserID: "0190a1b2-0000-7000-8000-000000000001", Roles: []string{"User"}}
	stranger = &sec.AuthClaims{UserID: "0190a1b2-0000-7000-8000-000000000002", Roles: []string{"User"}}
	admin    = &sec.AuthClaims{UserID: "0190a1b2-0000-7000-8000-000000000003", Roles: []string{"User", "Admin"}}
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService() (*Service, *memoryRepository) {
	repository := newMemoryRepository()
	service := NewService(repository)
	service.now = func() time.Time { return fixedNow }
	return service, repository
}

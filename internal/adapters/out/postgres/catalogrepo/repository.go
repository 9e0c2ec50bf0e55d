package catalogrepo

import (
	"context"
	"errors"

	"fulfilment/internal/core/domain/model/catalog"
	"fulfilment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCatalogReader implements CatalogReader using GORM.
// The catalog is read-only from the engine's point of view.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// FindMany retrieves catalog entries for the given identifiers in one query.
// Identifiers without a matching row are simply absent from the result map;
// a missing row is not an error, the caller keeps the original item instead.
func (r *GormCatalogReader) FindMany(
	ctx context.Context,
	ids []kernel.CatalogEntryID,
) (map[kernel.CatalogEntryID]catalog.Entry, error) {
	entries := make(map[kernel.CatalogEntryID]catalog.Entry, len(ids))
	if len(ids) == 0 {
		return entries, nil
	}

	rawIDs := make([]int, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.Int())
	}

	var dtos []WarehouseItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "line_id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries[entry.ID()] = entry
	}

	return entries, nil
}

// FindOne retrieves a single catalog entry. The second return value reports
// whether a row with that identifier exists.
func (r *GormCatalogReader) FindOne(
	ctx context.Context,
	id kernel.CatalogEntryID,
) (catalog.Entry, bool, error) {
	if err := id.Validate(); err != nil {
		return catalog.Entry{}, false, err
	}

	var dto WarehouseItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "line_id = ?", id.Int()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Entry{}, false, nil
		}
		return catalog.Entry{}, false, err
	}

	entry, err := toDomain(dto)
	if err != nil {
		return catalog.Entry{}, false, err
	}

	return entry, true, nil
}

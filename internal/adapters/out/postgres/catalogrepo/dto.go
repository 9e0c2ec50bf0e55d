// Package catalogrepo provides read access to the warehouse catalog.
// Replacement candidates suggested by the substitution collaborator are
// resolved against this catalog before they are applied to an order.
package catalogrepo

import (
	"fulfilment/internal/core/domain/model/catalog"
	"fulfilment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// WarehouseItemDTO represents one row of the warehouse catalog. The table is
// maintained by the warehouse inventory system; this adapter only reads it.
type WarehouseItemDTO struct {
	LineID      int             `gorm:"primaryKey"`
	ProductCode string          `gorm:"type:varchar(64);not null"`
	Name        string          `gorm:"type:varchar(255)"`
	Qty         decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Unit        string          `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for warehouse catalog rows.
// Overrides GORM's default naming convention to use "warehouse_items".
func (WarehouseItemDTO) TableName() string {
	return "warehouse_items"
}

// toDomain converts a warehouse row to a catalog entry value object.
func toDomain(dto WarehouseItemDTO) (catalog.Entry, error) {
	id, err := kernel.NewCatalogEntryID(dto.LineID)
	if err != nil {
		return catalog.Entry{}, err
	}

	return catalog.NewEntry(id, dto.ProductCode, dto.Name, dto.Qty, dto.Unit)
}

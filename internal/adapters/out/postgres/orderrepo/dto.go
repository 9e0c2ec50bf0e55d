// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"strings"
	"time"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier comes from the upstream ordering system, so it is stored as
// opaque text rather than a generated key.
type OrderDTO struct {
	ID             string         `gorm:"type:varchar(64);primaryKey"`
	CustomerID     string         `gorm:"type:varchar(64);not null;index"`
	CreatedAt      time.Time      `gorm:"not null"`
	DeliveryDate   time.Time      `gorm:"not null"`
	Contact        ContactDTO     `gorm:"embedded;embeddedPrefix:contact_"`
	DegradedStages string         `gorm:"type:varchar(255);not null;default:''"`
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ContactDTO represents the embedded customer contact details within the order table.
type ContactDTO struct {
	Phone    string `gorm:"type:varchar(32)"`
	Email    string `gorm:"type:varchar(255)"`
	Language string `gorm:"type:varchar(8)"`
}

// OrderItemDTO represents the database structure for persisting order lines.
// The position column preserves the intake ordering of lines, which survives
// replacements and deletions.
type OrderItemDTO struct {
	OrderID     string          `gorm:"type:varchar(64);primaryKey"`
	LineID      int             `gorm:"primaryKey"`
	Position    int             `gorm:"not null"`
	ProductCode string          `gorm:"type:varchar(64);not null"`
	Name        string          `gorm:"type:varchar(255)"`
	Qty         decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Unit        string          `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the degraded pipeline stages recorded
// during processing.
func fromDomain(ord *order.Order) OrderDTO {
	orderID := ord.ID().String()

	domainItems := ord.Items()
	items := make([]OrderItemDTO, 0, len(domainItems))
	for position, item := range domainItems {
		items = append(items, OrderItemDTO{
			OrderID:     orderID,
			LineID:      item.LineID().Int(),
			Position:    position,
			ProductCode: item.ProductCode(),
			Name:        item.Name(),
			Qty:         item.Qty().Decimal(),
			Unit:        item.Unit(),
		})
	}

	stages := ord.FallbackStages()
	stageNames := make([]string, 0, len(stages))
	for _, stage := range stages {
		stageNames = append(stageNames, stage.String())
	}

	return OrderDTO{
		ID:           orderID,
		CustomerID:   ord.CustomerID(),
		CreatedAt:    ord.CreatedAt(),
		DeliveryDate: ord.DeliveryDate(),
		Contact: ContactDTO{
			Phone:    ord.Contact().Phone(),
			Email:    ord.Contact().Email(),
			Language: ord.Contact().Language(),
		},
		DegradedStages: strings.Join(stageNames, ","),
		Items:          items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including degraded stages using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	stages := make([]order.FallbackStage, 0)
	if dto.DegradedStages != "" {
		for _, name := range strings.Split(dto.DegradedStages, ",") {
			stage, stageErr := order.ParseFallbackStage(name)
			if stageErr != nil {
				return nil, stageErr
			}
			stages = append(stages, stage)
		}
	}

	contact := order.NewContact(dto.Contact.Phone, dto.Contact.Email, dto.Contact.Language)

	return order.RestoreOrder(id, dto.CustomerID, dto.CreatedAt, dto.DeliveryDate, contact, items, stages)
}

// itemToDomain converts an order line DTO to its domain entity.
func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	lineID, err := kernel.NewOrderLineID(dto.LineID)
	if err != nil {
		return nil, err
	}

	qty, err := kernel.NewQuantity(dto.Qty)
	if err != nil {
		return nil, err
	}

	return order.NewItem(lineID, dto.ProductCode, dto.Name, qty, dto.Unit)
}

package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/samplestore/backend/internal/domain/shared"
)

// Item is a product that can be invoiced
type Item struct {
	shared.BaseAggregateRoot
	Title string          `gorm:"type:varchar(55);not null"`
	Price decimal.Decimal `gorm:"type:decimal(8,2);not null"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new item
func NewItem(title string, price decimal.Decimal) (*Item, error) {
	if err := validateItemTitle(title); err != nil {
		return nil, err
	}
	if err := validateItemPrice(price); err != nil {
		return nil, err
	}

	return &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Price:             price,
	}, nil
}

// Update changes the item's title and price
func (i *Item) Update(title string, price decimal.Decimal) error {
	if err := validateItemTitle(title); err != nil {
		return err
	}
	if err := validateItemPrice(price); err != nil {
		return err
	}

	i.Title = title
	i.Price = price
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

func validateItemTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Item title cannot be empty")
	}
	if len(title) > 55 {
		return shared.NewDomainError("INVALID_TITLE", "Item title cannot exceed 55 characters")
	}
	return nil
}

func validateItemPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	}
	return nil
}

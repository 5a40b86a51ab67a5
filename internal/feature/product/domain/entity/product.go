// Package entity defines the domain entities for the product feature.
package entity

import "time"

// Product represents a product record in the catalog.
type Product struct {
	// ID is the unique identifier, assigned by the store on creation.
	ID uint `gorm:"primaryKey"`

	// DateCreated is the calendar date the product was created, normalized
	// to UTC midnight. It is set once at creation and never updated.
	DateCreated time.Time `gorm:"type:date;not null"`

	// Name is the product's display name.
	Name string `gorm:"size:255;not null"`

	// Price is the product's price. Negative values are accepted.
	Price int `gorm:"not null"`
}

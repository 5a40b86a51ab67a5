// Package usecase implements the business logic for the product feature.
package usecase

import "errors"

// ErrProductNotFound is returned when no product exists for the given id.
// It is distinguishable from infrastructure failures so the transport layer
// can choose 404 over 500.
var ErrProductNotFound = errors.New("product with specified id not found")

// internal/domain/vehicle/repository.go
package vehicle

import "context"

// Repository is the persistence contract for the vehicle collection. The
// store is synchronized as a whole list, never record by record, so the
// contract has no single-row upsert.
type Repository interface {
	// Load returns every persisted vehicle, newest first.
	Load(ctx context.Context) ([]Vehicle, error)

	// ReplaceAll makes the persisted set exactly the supplied list: rows
	// absent from the list are deleted, everything in the list is upserted
	// by id. The whole replacement happens in one transaction.
	ReplaceAll(ctx context.Context, vehicles []Vehicle) error
}

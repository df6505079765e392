// internal/domain/seller/repository.go
package seller

import "context"

// Repository is the persistence contract for sellers. Unlike vehicles,
// sellers are synchronized per record: upsert-by-id and delete-by-id.
type Repository interface {
	// Load returns every persisted seller ordered by name.
	Load(ctx context.Context) ([]Seller, error)

	// Upsert inserts or updates one seller by id. When keepPassword is set
	// the stored password column is left untouched.
	Upsert(ctx context.Context, s Seller, keepPassword bool) error

	Delete(ctx context.Context, id string) error

	// FindByCredentials returns the active seller whose username or email
	// equals identifier and whose stored password equals password.
	// A credential match on an inactive seller returns ErrSellerInactive so
	// callers can log the distinction; both cases must surface to users as
	// the same invalid-credentials result.
	FindByCredentials(ctx context.Context, identifier, password string) (*Seller, error)
}

// internal/repository/postgres/seller_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"rainerio-service/internal/domain/seller"
	xerrors "rainerio-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sellerColumns = `
	id, name, role, image_url, username, password,
	instagram, whatsapp, email, bio, active, is_admin
`

// Legacy rows may carry NULLs in the optional text columns; coalesce them so
// the in-memory model always holds plain strings.
const sellerSelectColumns = `
	id, name, COALESCE(role, ''), COALESCE(image_url, ''), username, password,
	COALESCE(instagram, ''), COALESCE(whatsapp, ''), COALESCE(email, ''),
	COALESCE(bio, ''), active, is_admin
`

type SellerRepository struct {
	db *pgxpool.Pool
}

func NewSellerRepository(db *pgxpool.Pool) *SellerRepository {
	return &SellerRepository{db: db}
}

// Load returns every seller ordered by name.
func (r *SellerRepository) Load(ctx context.Context) ([]seller.Seller, error) {
	query := `SELECT ` + sellerSelectColumns + ` FROM sellers ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load sellers: %w", err)
	}
	defer rows.Close()

	var sellers []seller.Seller
	for rows.Next() {
		s, err := scanSeller(rows)
		if err != nil {
			return nil, err
		}
		sellers = append(sellers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sellers: %w", err)
	}

	return sellers, nil
}

// Upsert inserts or updates one seller by id. With keepPassword the password
// column is kept out of the statement entirely, so editing a seller without
// retyping the password preserves the stored one; inserting a brand-new
// seller that way trips the NOT NULL constraint, which is the rejected-write
// path for a missing credential.
func (r *SellerRepository) Upsert(ctx context.Context, s seller.Seller, keepPassword bool) error {
	var query string
	var args []interface{}

	if keepPassword {
		query = `
			INSERT INTO sellers (id, name, role, image_url, username, instagram, whatsapp, email, bio, active, is_admin)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				role = EXCLUDED.role,
				image_url = EXCLUDED.image_url,
				username = EXCLUDED.username,
				instagram = EXCLUDED.instagram,
				whatsapp = EXCLUDED.whatsapp,
				email = EXCLUDED.email,
				bio = EXCLUDED.bio,
				active = EXCLUDED.active,
				is_admin = EXCLUDED.is_admin
		`
		args = []interface{}{s.ID, s.Name, s.Role, s.ImageURL, s.Username, s.Instagram, s.Whatsapp, s.Email, s.Bio, s.Active, s.IsAdmin}
	} else {
		query = `
			INSERT INTO sellers (` + sellerColumns + `)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				role = EXCLUDED.role,
				image_url = EXCLUDED.image_url,
				username = EXCLUDED.username,
				password = EXCLUDED.password,
				instagram = EXCLUDED.instagram,
				whatsapp = EXCLUDED.whatsapp,
				email = EXCLUDED.email,
				bio = EXCLUDED.bio,
				active = EXCLUDED.active,
				is_admin = EXCLUDED.is_admin
		`
		args = []interface{}{s.ID, s.Name, s.Role, s.ImageURL, s.Username, s.Password, s.Instagram, s.Whatsapp, s.Email, s.Bio, s.Active, s.IsAdmin}
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert seller: %w", err)
	}
	return nil
}

func (r *SellerRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sellers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete seller: %w", err)
	}
	return nil
}

// FindByCredentials looks up a seller by username or email plus the stored
// plaintext password. A match on an inactive seller returns
// ErrSellerInactive; no match at all returns ErrNotFound. Callers must not
// let users tell the two apart.
func (r *SellerRepository) FindByCredentials(ctx context.Context, identifier, password string) (*seller.Seller, error) {
	query := `
		SELECT ` + sellerSelectColumns + `
		FROM sellers
		WHERE (username = $1 OR LOWER(email) = LOWER($1)) AND password = $2
	`

	row := r.db.QueryRow(ctx, query, identifier, password)
	s, err := scanSeller(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !s.Active {
		return nil, xerrors.ErrSellerInactive
	}
	return &s, nil
}

func scanSeller(row pgx.Row) (seller.Seller, error) {
	var s seller.Seller
	err := row.Scan(
		&s.ID, &s.Name, &s.Role, &s.ImageURL, &s.Username, &s.Password,
		&s.Instagram, &s.Whatsapp, &s.Email, &s.Bio, &s.Active, &s.IsAdmin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s, err
		}
		return s, fmt.Errorf("failed to scan seller: %w", err)
	}
	return s, nil
}

// internal/repository/postgres/vehicle_repo.go
package postgres

import (
	"context"
	"fmt"

	"rainerio-service/internal/domain/vehicle"

	"github.com/jackc/pgx/v5/pgxpool"
)

// vehicleColumns is the full snake_case column set of the vehicles table.
// Every field of the in-memory model maps here; nothing is dropped in
// either direction.
const vehicleColumns = `
	id, name, brand, type, price, price_numeric, year, km, km_numeric,
	color, image, featured, seller_name, hide_price, description,
	engine, transmission, seats, tires, manual_prop, spare_key,
	steering, review, gallery, created_at
`

// Legacy rows may carry NULLs in optional columns; coalesce them so the
// in-memory model always holds plain values.
const vehicleSelectColumns = `
	id, name, brand, type, price, price_numeric, year, km, km_numeric,
	color, image, COALESCE(featured, false), COALESCE(seller_name, ''),
	COALESCE(hide_price, false), COALESCE(description, ''),
	COALESCE(engine, 'N/A'), COALESCE(transmission, 'N/A'),
	COALESCE(seats, 'N/A'), COALESCE(tires, 'N/A'),
	COALESCE(manual_prop, 'N/A'), COALESCE(spare_key, 'N/A'),
	COALESCE(steering, 'N/A'), COALESCE(review, 'N/A'),
	COALESCE(gallery, '{}'), created_at
`

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Load returns every vehicle, newest first.
func (r *VehicleRepository) Load(ctx context.Context) ([]vehicle.Vehicle, error) {
	query := `SELECT ` + vehicleSelectColumns + ` FROM vehicles ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []vehicle.Vehicle
	for rows.Next() {
		var v vehicle.Vehicle
		var gallery []string
		err := rows.Scan(
			&v.ID, &v.Name, &v.Brand, &v.Type, &v.Price, &v.PriceNumeric,
			&v.Year, &v.KM, &v.KMNumeric, &v.Color, &v.Image, &v.Featured,
			&v.SellerName, &v.HidePrice, &v.Description, &v.Engine,
			&v.Transmission, &v.Seats, &v.Tires, &v.ManualProp, &v.SpareKey,
			&v.Steering, &v.Review, &gallery, &v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		v.Gallery = gallery
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vehicles: %w", err)
	}

	return vehicles, nil
}

// ReplaceAll makes the vehicles table exactly the supplied set, in one
// transaction: rows not in the set are deleted, everything in the set is
// upserted by id. There is no conflict detection; a concurrent replace is
// serialized by the transaction and the last writer wins.
func (r *VehicleRepository) ReplaceAll(ctx context.Context, vehicles []vehicle.Vehicle) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin sync transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	ids := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		ids = append(ids, v.ID)
	}

	if len(ids) == 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM vehicles`); err != nil {
			return fmt.Errorf("failed to clear vehicles: %w", err)
		}
	} else {
		if _, err := tx.Exec(ctx, `DELETE FROM vehicles WHERE NOT (id = ANY($1))`, ids); err != nil {
			return fmt.Errorf("failed to delete removed vehicles: %w", err)
		}
	}

	upsert := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			brand = EXCLUDED.brand,
			type = EXCLUDED.type,
			price = EXCLUDED.price,
			price_numeric = EXCLUDED.price_numeric,
			year = EXCLUDED.year,
			km = EXCLUDED.km,
			km_numeric = EXCLUDED.km_numeric,
			color = EXCLUDED.color,
			image = EXCLUDED.image,
			featured = EXCLUDED.featured,
			seller_name = EXCLUDED.seller_name,
			hide_price = EXCLUDED.hide_price,
			description = EXCLUDED.description,
			engine = EXCLUDED.engine,
			transmission = EXCLUDED.transmission,
			seats = EXCLUDED.seats,
			tires = EXCLUDED.tires,
			manual_prop = EXCLUDED.manual_prop,
			spare_key = EXCLUDED.spare_key,
			steering = EXCLUDED.steering,
			review = EXCLUDED.review,
			gallery = EXCLUDED.gallery
	`

	for _, v := range vehicles {
		_, err := tx.Exec(ctx, upsert,
			v.ID, v.Name, v.Brand, v.Type, v.Price, v.PriceNumeric,
			v.Year, v.KM, v.KMNumeric, v.Color, v.Image, v.Featured,
			v.SellerName, v.HidePrice, v.Description, v.Engine,
			v.Transmission, v.Seats, v.Tires, v.ManualProp, v.SpareKey,
			v.Steering, v.Review, []string(v.Gallery), v.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert vehicle %s: %w", v.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sync transaction: %w", err)
	}
	return nil
}

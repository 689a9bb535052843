package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"simulador-preco/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const profileColumns = `
	id,
	name,
	admin_expense,
	logistics_expense,
	operational_expense,
	commercial_expense,
	fees,
	tax,
	profit,
	is_default,
	created_at,
	updated_at
`

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.AdminExpense,
		&p.LogisticsExpense,
		&p.OperationalExpense,
		&p.CommercialExpense,
		&p.Fees,
		&p.Tax,
		&p.Profit,
		&p.IsDefault,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// Create profile (clears previous default in one tx)
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, profile *Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if profile.IsDefault {
		if _, err := tx.Exec(ctx, `
			UPDATE pricing_profiles SET is_default = FALSE WHERE is_default
		`); err != nil {
			return err
		}
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO pricing_profiles (
			name,
			admin_expense,
			logistics_expense,
			operational_expense,
			commercial_expense,
			fees,
			tax,
			profit,
			is_default
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`,
		profile.Name,
		profile.AdminExpense,
		profile.LogisticsExpense,
		profile.OperationalExpense,
		profile.CommercialExpense,
		profile.Fees,
		profile.Tax,
		profile.Profit,
		profile.IsDefault,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Update profile (clears previous default in one tx)
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, profile *Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if profile.IsDefault {
		if _, err := tx.Exec(ctx, `
			UPDATE pricing_profiles SET is_default = FALSE WHERE is_default AND id <> $1
		`, profile.ID); err != nil {
			return err
		}
	}

	err = tx.QueryRow(ctx, `
		UPDATE pricing_profiles
		SET name = $1,
		    admin_expense = $2,
		    logistics_expense = $3,
		    operational_expense = $4,
		    commercial_expense = $5,
		    fees = $6,
		    tax = $7,
		    profit = $8,
		    is_default = $9,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
		RETURNING updated_at
	`,
		profile.Name,
		profile.AdminExpense,
		profile.LogisticsExpense,
		profile.OperationalExpense,
		profile.CommercialExpense,
		profile.Fees,
		profile.Tax,
		profile.Profit,
		profile.IsDefault,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("profile %d: %w", profile.ID, core.ErrNotFound)
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Get profile by id
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Profile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM pricing_profiles
		WHERE id = $1
	`, id)

	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("profile %d: %w", id, core.ErrNotFound)
	}
	return p, err
}

// --------------------------------------------------
// Get the default profile
// --------------------------------------------------
func (r *PostgresRepository) GetDefault(ctx context.Context) (*Profile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM pricing_profiles
		WHERE is_default
		LIMIT 1
	`)

	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("no default pricing profile: %w", core.ErrNotFound)
	}
	return p, err
}

// --------------------------------------------------
// List profiles
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*Profile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+profileColumns+`
		FROM pricing_profiles
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// --------------------------------------------------
// Delete profile
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pricing_profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %d: %w", id, core.ErrNotFound)
	}
	return nil
}

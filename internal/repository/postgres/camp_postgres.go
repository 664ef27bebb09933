package postgres

import (
	"context"
	"database/sql"

	"scoutportal/internal/model"
	"scoutportal/internal/repository"
)

// CampPostgres is a PostgreSQL implementation of repository.CampRepository.
// Contact, services and images are stored as JSONB columns.
type CampPostgres struct {
	db *sql.DB
}

// NewCampPostgres creates a new CampPostgres repository.
func NewCampPostgres(db *sql.DB) *CampPostgres {
	return &CampPostgres{db: db}
}

var _ repository.CampRepository = (*CampPostgres)(nil)

const campColumns = "id, name, description, address, city, province, contact, capacity, services, status, images, added_by, created_at, updated_at"

func scanCamp(row interface{ Scan(...any) error }) (*model.Camp, error) {
	var (
		c        model.Camp
		contact  []byte
		services []byte
		images   []byte
		addedBy  sql.NullString
	)
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Address,
		&c.City,
		&c.Province,
		&contact,
		&c.Capacity,
		&services,
		&c.Status,
		&images,
		&addedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(contact, &c.Contact); err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(services, &c.Services); err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(images, &c.Images); err != nil {
		return nil, err
	}
	c.AddedBy = addedBy.String
	return &c, nil
}

// Create inserts a new camp row and returns the stored record.
func (r *CampPostgres) Create(ctx context.Context, camp *model.Camp) (*model.Camp, error) {
	contact, err := marshalJSONB(camp.Contact)
	if err != nil {
		return nil, err
	}
	services, err := marshalJSONB(camp.Services)
	if err != nil {
		return nil, err
	}
	images, err := marshalJSONB(camp.Images)
	if err != nil {
		return nil, err
	}

	const q = `
		INSERT INTO camps (id, name, description, address, city, province, contact, capacity, services, status, images, added_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), $13, $14)
		RETURNING ` + campColumns
	row := r.db.QueryRowContext(ctx, q,
		camp.ID,
		camp.Name,
		camp.Description,
		camp.Address,
		camp.City,
		camp.Province,
		contact,
		camp.Capacity,
		services,
		camp.Status,
		images,
		camp.AddedBy,
		camp.CreatedAt,
		camp.UpdatedAt,
	)
	return scanCamp(row)
}

// FindByID fetches a single camp by its ID.
func (r *CampPostgres) FindByID(ctx context.Context, id string) (*model.Camp, error) {
	const q = `SELECT ` + campColumns + ` FROM camps WHERE id = $1`
	return scanCamp(r.db.QueryRowContext(ctx, q, id))
}

// ListByStatus returns camps with the given status, newest first.
// An empty status returns every camp.
func (r *CampPostgres) ListByStatus(ctx context.Context, status string) ([]model.Camp, error) {
	const q = `
		SELECT ` + campColumns + ` FROM camps
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Camp, 0)
	for rows.Next() {
		c, err := scanCamp(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the mutable fields of a camp and returns the stored row.
func (r *CampPostgres) Update(ctx context.Context, camp *model.Camp) (*model.Camp, error) {
	contact, err := marshalJSONB(camp.Contact)
	if err != nil {
		return nil, err
	}
	services, err := marshalJSONB(camp.Services)
	if err != nil {
		return nil, err
	}
	images, err := marshalJSONB(camp.Images)
	if err != nil {
		return nil, err
	}

	const q = `
		UPDATE camps
		SET name = $2, description = $3, address = $4, city = $5, province = $6,
		    contact = $7, capacity = $8, services = $9, status = $10, images = $11,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + campColumns
	row := r.db.QueryRowContext(ctx, q,
		camp.ID,
		camp.Name,
		camp.Description,
		camp.Address,
		camp.City,
		camp.Province,
		contact,
		camp.Capacity,
		services,
		camp.Status,
		images,
	)
	return scanCamp(row)
}

// UpdateStatus sets only the moderation status and returns the stored row.
func (r *CampPostgres) UpdateStatus(ctx context.Context, id, status string) (*model.Camp, error) {
	const q = `
		UPDATE camps SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + campColumns
	return scanCamp(r.db.QueryRowContext(ctx, q, id, status))
}

// Delete removes a camp by ID. Missing rows surface as sql.ErrNoRows.
func (r *CampPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM camps WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

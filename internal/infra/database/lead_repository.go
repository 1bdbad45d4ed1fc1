package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/telecrm/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, name, email, phone, address, call_status, response_status,
	telecaller_id, telecaller_name, last_updated, created_at`

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY last_updated DESC`
	return r.queryLeads(ctx, query)
}

func (r *LeadRepository) FindByTelecaller(ctx context.Context, telecallerID string) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE telecaller_id = $1 ORDER BY last_updated DESC`
	return r.queryLeads(ctx, query, telecallerID)
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, address, call_status, response_status,
			telecaller_id, telecaller_name, last_updated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Address,
		nullString(string(lead.CallStatus)),
		nullString(string(lead.ResponseStatus)),
		lead.TelecallerID,
		lead.TelecallerName,
		lead.LastUpdated,
		lead.CreatedAt,
	)
	return err
}

func (r *LeadRepository) Save(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $2, email = $3, phone = $4, address = $5,
			call_status = $6, response_status = $7, last_updated = $8
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Address,
		nullString(string(lead.CallStatus)),
		nullString(string(lead.ResponseStatus)),
		lead.LastUpdated,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, err
}

func (r *LeadRepository) queryLeads(ctx context.Context, query string, args ...interface{}) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var callStatus, responseStatus sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Address,
		&callStatus,
		&responseStatus,
		&lead.TelecallerID,
		&lead.TelecallerName,
		&lead.LastUpdated,
		&lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.CallStatus = entity.CallStatus(callStatus.String)
	lead.ResponseStatus = entity.ResponseStatus(responseStatus.String)
	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

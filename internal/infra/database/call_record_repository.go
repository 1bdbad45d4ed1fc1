package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/xavierca1/telecrm/internal/entity"
	"github.com/xavierca1/telecrm/internal/usecase"
)

// CallRecordRepository is append-only: there is no update or delete on
// purpose, records are a historical log.
type CallRecordRepository struct {
	DB *sql.DB
}

func NewCallRecordRepository(db *sql.DB) *CallRecordRepository {
	return &CallRecordRepository{DB: db}
}

const callRecordColumns = `id, lead_id, customer_name, telecaller_id, telecaller_name,
	call_status, response_status, call_date_time`

func (r *CallRecordRepository) FindByID(ctx context.Context, id string) (*entity.CallRecord, error) {
	query := `SELECT ` + callRecordColumns + ` FROM call_records WHERE id = $1`

	record, err := scanCallRecord(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrCallRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

func (r *CallRecordRepository) FindAll(ctx context.Context) ([]entity.CallRecord, error) {
	query := `SELECT ` + callRecordColumns + ` FROM call_records ORDER BY call_date_time DESC`
	return r.queryRecords(ctx, query)
}

func (r *CallRecordRepository) FindByTelecaller(ctx context.Context, telecallerID string) ([]entity.CallRecord, error) {
	query := `SELECT ` + callRecordColumns + ` FROM call_records WHERE telecaller_id = $1 ORDER BY call_date_time DESC`
	return r.queryRecords(ctx, query, telecallerID)
}

func (r *CallRecordRepository) FindByLead(ctx context.Context, leadID string) ([]entity.CallRecord, error) {
	query := `SELECT ` + callRecordColumns + ` FROM call_records WHERE lead_id = $1 ORDER BY call_date_time DESC`
	return r.queryRecords(ctx, query, leadID)
}

func (r *CallRecordRepository) Create(ctx context.Context, record *entity.CallRecord) error {
	query := `
		INSERT INTO call_records (id, lead_id, customer_name, telecaller_id, telecaller_name,
			call_status, response_status, call_date_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.LeadID,
		record.CustomerName,
		record.TelecallerID,
		record.TelecallerName,
		string(record.CallStatus),
		string(record.ResponseStatus),
		record.CallDateTime,
	)
	return err
}

func (r *CallRecordRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM call_records`).Scan(&count)
	return count, err
}

// CountByDaySince groups records by UTC calendar day. Only days with at
// least one record come back; the aggregator zero-fills the rest.
func (r *CallRecordRepository) CountByDaySince(ctx context.Context, since time.Time) ([]usecase.DayCount, error) {
	query := `
		SELECT to_char(call_date_time AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		FROM call_records
		WHERE call_date_time >= $1
		GROUP BY day
		ORDER BY day ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []usecase.DayCount{}
	for rows.Next() {
		var dc usecase.DayCount
		if err := rows.Scan(&dc.Date, &dc.Calls); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}

func (r *CallRecordRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]entity.CallRecord, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []entity.CallRecord{}
	for rows.Next() {
		record, err := scanCallRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func scanCallRecord(row rowScanner) (*entity.CallRecord, error) {
	var record entity.CallRecord
	var callStatus, responseStatus string

	err := row.Scan(
		&record.ID,
		&record.LeadID,
		&record.CustomerName,
		&record.TelecallerID,
		&record.TelecallerName,
		&callStatus,
		&responseStatus,
		&record.CallDateTime,
	)
	if err != nil {
		return nil, err
	}

	record.CallStatus = entity.CallStatus(callStatus)
	record.ResponseStatus = entity.ResponseStatus(responseStatus)
	return &record, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"motomind/internal/domain/entities"
	"motomind/internal/usecase/interfaces"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

// RecordSQLiteRepository persists ServiceRecord entities in a local SQLite
// file. Line items live in record_lines, ordered by position.
type RecordSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IRecordRepository = (*RecordSQLiteRepository)(nil)

// NewRecordSQLiteRepository opens (creating if needed) the database at path
// and runs migrations.
func NewRecordSQLiteRepository(ctx context.Context, path string) (*RecordSQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if err := runSQLiteMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &RecordSQLiteRepository{db: db}, nil
}

func (r *RecordSQLiteRepository) Close() error {
	return r.db.Close()
}

const recordColumns = `id, workshop_id, customer_name, phone, bike_model, odometer, service_date, next_service_date,
	parts_total, labor_total, total_amount, finalized, finalized_at, created_at, updated_at, last_delivered_at, delivery_count`

func (r *RecordSQLiteRepository) Create(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO service_records (`+recordColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.WorkshopID, rec.CustomerName, rec.Phone, string(rec.BikeModel), rec.Odometer,
		formatDate(rec.ServiceDate), formatDate(rec.NextServiceDate),
		rec.PartsTotal, rec.LaborTotal, rec.TotalAmount, rec.Finalized,
		nullString(formatTimePtr(rec.FinalizedAt)), formatTime(rec.CreatedAt), formatTime(rec.UpdatedAt),
		nullString(formatTimePtr(rec.LastDeliveredAt)), rec.DeliveryCount,
	)
	if err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("failed to insert record: %w", err)
	}
	if err := insertLines(ctx, tx, rec); err != nil {
		return entities.ServiceRecord{}, err
	}
	if err := tx.Commit(); err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return rec, nil
}

func (r *RecordSQLiteRepository) GetByID(ctx context.Context, workshopID, id string) (entities.ServiceRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM service_records WHERE id = ? AND workshop_id = ?`, id, workshopID)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ServiceRecord{}, nil
	}
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if err := r.loadLines(ctx, &rec); err != nil {
		return entities.ServiceRecord{}, err
	}
	return rec, nil
}

func (r *RecordSQLiteRepository) Update(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	return r.writeDraft(ctx, rec)
}

func (r *RecordSQLiteRepository) Finalize(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	return r.writeDraft(ctx, rec)
}

// writeDraft overwrites the record only while the stored row is not finalized.
func (r *RecordSQLiteRepository) writeDraft(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE service_records SET customer_name = ?, phone = ?, bike_model = ?, odometer = ?, next_service_date = ?,
			parts_total = ?, labor_total = ?, total_amount = ?, finalized = ?, finalized_at = ?, updated_at = ?
		WHERE id = ? AND workshop_id = ? AND finalized = 0`,
		rec.CustomerName, rec.Phone, string(rec.BikeModel), rec.Odometer, formatDate(rec.NextServiceDate),
		rec.PartsTotal, rec.LaborTotal, rec.TotalAmount, rec.Finalized,
		nullString(formatTimePtr(rec.FinalizedAt)), formatTime(rec.UpdatedAt),
		rec.ID, rec.WorkshopID,
	)
	if err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("failed to update record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if n == 0 {
		var finalized bool
		err := tx.QueryRowContext(ctx,
			`SELECT finalized FROM service_records WHERE id = ? AND workshop_id = ?`, rec.ID, rec.WorkshopID).Scan(&finalized)
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ServiceRecord{}, nil
		}
		if err != nil {
			return entities.ServiceRecord{}, err
		}
		return entities.ServiceRecord{}, interfaces.ErrRecordNotDraft
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM record_lines WHERE record_id = ?`, rec.ID); err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("failed to clear lines: %w", err)
	}
	if err := insertLines(ctx, tx, rec); err != nil {
		return entities.ServiceRecord{}, err
	}
	if err := tx.Commit(); err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return r.GetByID(ctx, rec.WorkshopID, rec.ID)
}

func (r *RecordSQLiteRepository) MarkDelivered(ctx context.Context, workshopID, id string, at time.Time) (entities.ServiceRecord, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE service_records SET last_delivered_at = ?, delivery_count = delivery_count + 1, updated_at = ?
		WHERE id = ? AND workshop_id = ?`,
		formatTime(at), formatTime(time.Now()), id, workshopID,
	)
	if err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("failed to mark delivered: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.ServiceRecord{}, nil
	}
	return r.GetByID(ctx, workshopID, id)
}

func (r *RecordSQLiteRepository) List(ctx context.Context, workshopID string, filter entities.RecordFilter) ([]entities.ServiceRecord, error) {
	var (
		where = []string{"workshop_id = ?"}
		args  = []any{workshopID}
	)
	if filter.StartDate != nil {
		where = append(where, "service_date >= ?")
		args = append(args, formatDate(*filter.StartDate))
	}
	if filter.EndDate != nil {
		where = append(where, "service_date <= ?")
		args = append(args, formatDate(*filter.EndDate))
	}
	query := `SELECT ` + recordColumns + ` FROM service_records WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY service_date DESC, created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	var records []entities.ServiceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range records {
		if err := r.loadLines(ctx, &records[i]); err != nil {
			return nil, err
		}
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (entities.ServiceRecord, error) {
	var (
		rec                         entities.ServiceRecord
		bike, serviceDate, nextDate string
		createdAt, updatedAt        string
		finalizedAt, lastDelivered  sql.NullString
	)
	err := row.Scan(
		&rec.ID, &rec.WorkshopID, &rec.CustomerName, &rec.Phone, &bike, &rec.Odometer, &serviceDate, &nextDate,
		&rec.PartsTotal, &rec.LaborTotal, &rec.TotalAmount, &rec.Finalized, &finalizedAt, &createdAt, &updatedAt,
		&lastDelivered, &rec.DeliveryCount,
	)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	rec.BikeModel = entities.BikeModel(bike)
	rec.ServiceDate = parseDate(serviceDate)
	rec.NextServiceDate = parseDate(nextDate)
	rec.CreatedAt = parseTime(createdAt)
	rec.UpdatedAt = parseTime(updatedAt)
	rec.FinalizedAt = parseTimePtr(finalizedAt.String)
	rec.LastDeliveredAt = parseTimePtr(lastDelivered.String)
	return rec, nil
}

func (r *RecordSQLiteRepository) loadLines(ctx context.Context, rec *entities.ServiceRecord) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, item_id, name, quantity, charge FROM record_lines WHERE record_id = ? ORDER BY kind, position`, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to load lines: %w", err)
	}
	defer rows.Close()

	rec.Parts = []entities.LineItemSelection{}
	rec.Services = []entities.LineItemSelection{}
	for rows.Next() {
		var (
			kind string
			l    entities.LineItemSelection
		)
		if err := rows.Scan(&kind, &l.ItemID, &l.Name, &l.Quantity, &l.Charge); err != nil {
			return err
		}
		if entities.ItemKind(kind) == entities.ItemKindPart {
			rec.Parts = append(rec.Parts, l)
		} else {
			rec.Services = append(rec.Services, l)
		}
	}
	return rows.Err()
}

func insertLines(ctx context.Context, tx *sql.Tx, rec entities.ServiceRecord) error {
	insert := func(kind entities.ItemKind, lines []entities.LineItemSelection) error {
		for i, l := range lines {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO record_lines (record_id, kind, position, item_id, name, quantity, charge) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				rec.ID, string(kind), i, l.ItemID, l.Name, l.Quantity, l.Charge,
			)
			if err != nil {
				return fmt.Errorf("failed to insert %s line: %w", kind, err)
			}
		}
		return nil
	}
	if err := insert(entities.ItemKindPart, rec.Parts); err != nil {
		return err
	}
	return insert(entities.ItemKindService, rec.Services)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

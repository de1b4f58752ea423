// Package event implements the event repository using PostgreSQL.
package event

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/V1p3er/anbargar/internal/adapter/postgres"
	"github.com/V1p3er/anbargar/internal/domain"
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const eventColumnsSQL = "id, business_id, type, folder_id, origin_folder_id, destination_folder_id, customer_id, description, created_at, updated_at"

var eventColumns = []string{"id", "business_id", "type", "folder_id", "origin_folder_id", "destination_folder_id", "customer_id", "description", "created_at", "updated_at"}

// Create inserts the event header. Line items are inserted separately via
// CreateItem inside the same transaction.
func (r *Repo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("events").
		Columns("business_id", "type", "folder_id", "origin_folder_id", "destination_folder_id", "customer_id", "description").
		Values(e.BusinessID, e.Type, e.FolderID, e.OriginFolderID, e.DestinationFolderID, e.CustomerID, e.Description).
		Suffix("RETURNING " + eventColumnsSQL).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert event: %w", err)
	}

	created, err := scanEvent(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event")
	}

	return created, nil
}

// CreateItem inserts one event line item.
func (r *Repo) CreateItem(ctx context.Context, li *domain.EventItem) (*domain.EventItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("event_items").
		Columns("event_id", "item_id", "name", "sku", "barcode", "quantity", "unit", "value").
		Values(li.EventID, li.ItemID, li.Name, li.SKU, li.Barcode, li.Quantity, li.Unit, li.Value).
		Suffix("RETURNING id, event_id, item_id, name, sku, barcode, quantity, unit, value, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert event item: %w", err)
	}

	created, err := scanEventItem(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event item")
	}

	return created, nil
}

// GetByID returns an event with its line items, scoped to the business.
func (r *Repo) GetByID(ctx context.Context, businessID, eventID uuid.UUID) (*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(eventColumns...).
		From("events").
		Where("id = ? AND business_id = ?", eventID, businessID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select event: %w", err)
	}

	e, err := scanEvent(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event")
	}

	items, err := r.listItems(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	e.Items = items

	return e, nil
}

// List returns the events of a business, newest first, with line items
// attached.
func (r *Repo) List(ctx context.Context, businessID uuid.UUID) ([]domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(eventColumns...).
		From("events").
		Where("business_id = ?", businessID).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range events {
		items, err := r.listItems(ctx, events[i].ID)
		if err != nil {
			return nil, err
		}
		events[i].Items = items
	}

	return events, nil
}

// UpdateDescription sets the description of an event, scoped to the business.
// It is the only mutable field of the record.
func (r *Repo) UpdateDescription(ctx context.Context, businessID, eventID uuid.UUID, description *string) (*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update("events").
		Set("description", description).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ? AND business_id = ?", eventID, businessID).
		Suffix("RETURNING " + eventColumnsSQL).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update event: %w", err)
	}

	e, err := scanEvent(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event")
	}

	items, err := r.listItems(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	e.Items = items

	return e, nil
}

// Delete removes an event, scoped to the business. Line items cascade.
func (r *Repo) Delete(ctx context.Context, businessID, eventID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, "DELETE FROM events WHERE id = $1 AND business_id = $2", eventID, businessID)
	if err != nil {
		return postgres.MapError(err, "event")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// SalesSince returns (timestamp, quantity) pairs from SELL event lines for an
// item at or after the cutoff, for the stockout predictor.
func (r *Repo) SalesSince(ctx context.Context, businessID, itemID uuid.UUID, cutoff time.Time) ([]domain.Sale, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, `
		SELECT e.created_at, ei.quantity
		FROM event_items ei
		JOIN events e ON e.id = ei.event_id
		WHERE e.business_id = $1
		  AND e.type = 'SELL'
		  AND ei.item_id = $2
		  AND e.created_at >= $3
		ORDER BY e.created_at ASC`,
		businessID, itemID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list sales for item: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.At, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}

	return sales, rows.Err()
}

func (r *Repo) listItems(ctx context.Context, eventID uuid.UUID) ([]domain.EventItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, `
		SELECT id, event_id, item_id, name, sku, barcode, quantity, unit, value, created_at
		FROM event_items
		WHERE event_id = $1
		ORDER BY created_at ASC`,
		eventID)
	if err != nil {
		return nil, fmt.Errorf("list event items: %w", err)
	}
	defer rows.Close()

	var items []domain.EventItem
	for rows.Next() {
		li, err := scanEventItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event item: %w", err)
		}
		items = append(items, *li)
	}

	return items, rows.Err()
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(&e.ID, &e.BusinessID, &e.Type, &e.FolderID, &e.OriginFolderID,
		&e.DestinationFolderID, &e.CustomerID, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEventItem(row pgx.Row) (*domain.EventItem, error) {
	var li domain.EventItem
	err := row.Scan(&li.ID, &li.EventID, &li.ItemID, &li.Name, &li.SKU, &li.Barcode,
		&li.Quantity, &li.Unit, &li.Value, &li.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &li, nil
}

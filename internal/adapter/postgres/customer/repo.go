// Package customer implements the Customer repository using PostgreSQL.
package customer

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/V1p3er/anbargar/internal/adapter/postgres"
	"github.com/V1p3er/anbargar/internal/domain"
)

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new customer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const customerColumnsSQL = "id, business_id, first_name, last_name, phone, email, address, created_at, updated_at"

var customerColumns = []string{"id", "business_id", "first_name", "last_name", "phone", "email", "address", "created_at", "updated_at"}

// Create inserts a new customer.
func (r *Repo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("customers").
		Columns("business_id", "first_name", "last_name", "phone", "email", "address").
		Values(c.BusinessID, c.FirstName, c.LastName, c.Phone, c.Email, c.Address).
		Suffix("RETURNING " + customerColumnsSQL).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert customer: %w", err)
	}

	created, err := scanCustomer(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "customer")
	}

	return created, nil
}

// GetByID returns a customer by primary key, scoped to the business.
func (r *Repo) GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(customerColumns...).
		From("customers").
		Where("id = ? AND business_id = ?", customerID, businessID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select customer: %w", err)
	}

	c, err := scanCustomer(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "customer")
	}

	return c, nil
}

// GetByPhone returns the customer with the given phone within a business.
// Returns domain.ErrNotFound if absent.
func (r *Repo) GetByPhone(ctx context.Context, businessID uuid.UUID, phone string) (*domain.Customer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(customerColumns...).
		From("customers").
		Where("business_id = ? AND phone = ?", businessID, phone).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select customer: %w", err)
	}

	c, err := scanCustomer(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "customer")
	}

	return c, nil
}

// List returns all customers of a business.
func (r *Repo) List(ctx context.Context, businessID uuid.UUID) ([]domain.Customer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(customerColumns...).
		From("customers").
		Where("business_id = ?", businessID).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list customers: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, *c)
	}

	return customers, rows.Err()
}

// Update persists the mutable fields of a customer, scoped to the business.
func (r *Repo) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update("customers").
		Set("first_name", c.FirstName).
		Set("last_name", c.LastName).
		Set("phone", c.Phone).
		Set("email", c.Email).
		Set("address", c.Address).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ? AND business_id = ?", c.ID, c.BusinessID).
		Suffix("RETURNING " + customerColumnsSQL).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update customer: %w", err)
	}

	updated, err := scanCustomer(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "customer")
	}

	return updated, nil
}

// Delete removes a customer, scoped to the business. Events that referenced
// the customer keep existing with customer_id set to NULL.
func (r *Repo) Delete(ctx context.Context, businessID, customerID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, "DELETE FROM customers WHERE id = $1 AND business_id = $2", customerID, businessID)
	if err != nil {
		return postgres.MapError(err, "customer")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", customerID, domain.ErrNotFound)
	}

	return nil
}

// PhoneExists reports whether another customer in the business already uses
// the phone. excludeID skips the customer being updated; pass uuid.Nil on create.
func (r *Repo) PhoneExists(ctx context.Context, businessID uuid.UUID, phone string, excludeID uuid.UUID) (bool, error) {
	return r.fieldExists(ctx, "phone", businessID, phone, excludeID)
}

// EmailExists reports whether another customer in the business already uses
// the email. excludeID skips the customer being updated; pass uuid.Nil on create.
func (r *Repo) EmailExists(ctx context.Context, businessID uuid.UUID, email string, excludeID uuid.UUID) (bool, error) {
	return r.fieldExists(ctx, "email", businessID, email, excludeID)
}

func (r *Repo) fieldExists(ctx context.Context, column string, businessID uuid.UUID, value string, excludeID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM customers WHERE business_id = $1 AND %s = $2 AND id <> $3)", column)

	var exists bool
	if err := querier.QueryRow(ctx, query, businessID, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("customer %s exists: %w", column, err)
	}

	return exists, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.BusinessID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Package otp implements the one-time-code repository using PostgreSQL.
package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/V1p3er/anbargar/internal/adapter/postgres"
	"github.com/V1p3er/anbargar/internal/domain"
)

// Repo provides OTP persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new OTP repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const otpColumns = "id, phone, code, expires_at, verified, created_at"

// Create inserts a new OTP record.
func (r *Repo) Create(ctx context.Context, phone, code string, expiresAt time.Time) (*domain.Otp, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("otps").
		Columns("phone", "code", "expires_at").
		Values(phone, code, expiresAt).
		Suffix("RETURNING " + otpColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert otp: %w", err)
	}

	var o domain.Otp
	row := querier.QueryRow(ctx, sql, args...)
	if err := row.Scan(&o.ID, &o.Phone, &o.Code, &o.ExpiresAt, &o.Verified, &o.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "otp")
	}

	return &o, nil
}

// LatestActive returns the most recent unverified, unexpired OTP for a phone.
// Returns domain.ErrNotFound if none exists.
func (r *Repo) LatestActive(ctx context.Context, phone string, now time.Time) (*domain.Otp, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "phone", "code", "expires_at", "verified", "created_at").
		From("otps").
		Where("phone = ? AND expires_at > ? AND NOT verified", phone, now).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select otp: %w", err)
	}

	var o domain.Otp
	row := querier.QueryRow(ctx, sql, args...)
	if err := row.Scan(&o.ID, &o.Phone, &o.Code, &o.ExpiresAt, &o.Verified, &o.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "otp")
	}

	return &o, nil
}

// FindMatch returns the unverified, unexpired OTP matching phone and code.
// Returns domain.ErrNotFound if no such record exists.
func (r *Repo) FindMatch(ctx context.Context, phone, code string, now time.Time) (*domain.Otp, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "phone", "code", "expires_at", "verified", "created_at").
		From("otps").
		Where("phone = ? AND code = ? AND expires_at > ? AND NOT verified", phone, code, now).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select otp: %w", err)
	}

	var o domain.Otp
	row := querier.QueryRow(ctx, sql, args...)
	if err := row.Scan(&o.ID, &o.Phone, &o.Code, &o.ExpiresAt, &o.Verified, &o.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "otp")
	}

	return &o, nil
}

// MarkVerified flags an OTP as consumed.
func (r *Repo) MarkVerified(ctx context.Context, otpID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, "UPDATE otps SET verified = true WHERE id = $1", otpID)
	if err != nil {
		return postgres.MapError(err, "otp")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("otp %s: %w", otpID, domain.ErrNotFound)
	}

	return nil
}

// DeleteExpired removes OTP records that expired before the threshold.
// Used by periodic cleanup.
func (r *Repo) DeleteExpired(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, "DELETE FROM otps WHERE expires_at < $1", threshold)
	if err != nil {
		return 0, fmt.Errorf("delete expired otps: %w", err)
	}

	return tag.RowsAffected(), nil
}

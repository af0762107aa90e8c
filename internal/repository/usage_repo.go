package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"massive-gateway/internal/model"
)

type UsageRepository struct {
	pool *pgxpool.Pool
}

func NewUsageRepository(pool *pgxpool.Pool) *UsageRepository {
	return &UsageRepository{pool: pool}
}

func (r *UsageRepository) Insert(ctx context.Context, entry model.UsageEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO usage_entries
		 (occurred_at, endpoint, method, status, duration_ms, client_ip, request_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.OccurredAt, entry.Endpoint, entry.Method, entry.Status,
		entry.DurationMS, entry.ClientIP, entry.RequestID)
	if err != nil {
		return fmt.Errorf("insert usage entry: %w", err)
	}
	return nil
}

func (r *UsageRepository) Query(ctx context.Context, query model.UsageQuery) ([]model.UsageEntry, model.Meta, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Limit > 200 {
		query.Limit = 200
	}

	where := make([]string, 0)
	args := make([]any, 0)
	argIdx := 1

	if endpoint := strings.TrimSpace(query.Endpoint); endpoint != "" {
		where = append(where, fmt.Sprintf("endpoint LIKE $%d", argIdx))
		args = append(args, "%"+endpoint+"%")
		argIdx++
	}
	if method := strings.TrimSpace(query.Method); method != "" {
		where = append(where, fmt.Sprintf("upper(method) = upper($%d)", argIdx))
		args = append(args, method)
		argIdx++
	}
	if query.Status > 0 {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, query.Status)
		argIdx++
	}
	if from := strings.TrimSpace(query.From); from != "" {
		where = append(where, fmt.Sprintf("occurred_at >= $%d::timestamptz", argIdx))
		args = append(args, from)
		argIdx++
	}
	if to := strings.TrimSpace(query.To); to != "" {
		where = append(where, fmt.Sprintf("occurred_at <= $%d::timestamptz", argIdx))
		args = append(args, to)
		argIdx++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM usage_entries %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, model.Meta{}, fmt.Errorf("count usage entries: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + query.Limit - 1) / query.Limit
	}
	meta := model.Meta{Page: query.Page, Limit: query.Limit, Total: total, TotalPages: totalPages}

	offset := (query.Page - 1) * query.Limit
	dataQuery := fmt.Sprintf(
		`SELECT occurred_at, endpoint, method, status, duration_ms, client_ip, request_id
		 FROM usage_entries %s
		 ORDER BY occurred_at DESC
		 LIMIT $%d OFFSET $%d`, whereClause, argIdx, argIdx+1)
	args = append(args, query.Limit, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, model.Meta{}, fmt.Errorf("query usage entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.UsageEntry, 0)
	for rows.Next() {
		var e model.UsageEntry
		var occurredAt time.Time

		if err := rows.Scan(&occurredAt, &e.Endpoint, &e.Method, &e.Status,
			&e.DurationMS, &e.ClientIP, &e.RequestID); err != nil {
			return nil, model.Meta{}, fmt.Errorf("scan usage entry: %w", err)
		}

		e.OccurredAt = occurredAt.UTC().Format(time.RFC3339Nano)
		entries = append(entries, e)
	}

	return entries, meta, rows.Err()
}

package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func NullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}

type Queries struct {
	db DBTX
}

type CashpotDraw struct {
	ID         int64
	RecordedAt int64
	DrawDate   string
	Session    string
	DrawNumber sql.NullInt64
	Value      sql.NullInt64
	AuxLabel   string
	Colors     string
}

const upsertDraw = `
INSERT INTO cashpot_draws (recorded_at, draw_date, session, draw_number, value, aux_label, colors)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (draw_date, session) DO UPDATE SET
    recorded_at = excluded.recorded_at,
    draw_number = excluded.draw_number,
    value = excluded.value,
    aux_label = excluded.aux_label,
    colors = excluded.colors
`

type UpsertDrawParams struct {
	RecordedAt int64
	DrawDate   string
	Session    string
	DrawNumber sql.NullInt64
	Value      sql.NullInt64
	AuxLabel   string
	Colors     string
}

func (q *Queries) UpsertDraw(ctx context.Context, arg UpsertDrawParams) error {
	_, err := q.db.ExecContext(ctx, upsertDraw,
		arg.RecordedAt,
		arg.DrawDate,
		arg.Session,
		arg.DrawNumber,
		arg.Value,
		arg.AuxLabel,
		arg.Colors,
	)
	return err
}

const listRecentDraws = `
SELECT id, recorded_at, draw_date, session, draw_number, value, aux_label, colors
FROM cashpot_draws
ORDER BY id DESC
LIMIT ?
`

func (q *Queries) ListRecentDraws(ctx context.Context, limit int64) ([]CashpotDraw, error) {
	rows, err := q.db.QueryContext(ctx, listRecentDraws, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CashpotDraw
	for rows.Next() {
		var i CashpotDraw
		err := rows.Scan(
			&i.ID,
			&i.RecordedAt,
			&i.DrawDate,
			&i.Session,
			&i.DrawNumber,
			&i.Value,
			&i.AuxLabel,
			&i.Colors,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const pruneDraws = `
DELETE FROM cashpot_draws
WHERE id NOT IN (
    SELECT id FROM cashpot_draws ORDER BY id DESC LIMIT ?
)
`

// PruneDraws keeps the history bounded to the newest `keep` rows.
func (q *Queries) PruneDraws(ctx context.Context, keep int64) error {
	_, err := q.db.ExecContext(ctx, pruneDraws, keep)
	return err
}

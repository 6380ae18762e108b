package repository

import (
	"context"
	"database/sql"
	"strings"
)

// InstallRepo handles the installed-agents library.
type InstallRepo struct {
	db *sql.DB
}

func NewInstallRepo(db *sql.DB) *InstallRepo {
	return &InstallRepo{db: db}
}

// Upsert inserts or refreshes a row. installed_at is written on first insert
// only; re-installs keep the original timestamp.
func (r *InstallRepo) Upsert(ctx context.Context, in Install) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO installs(agent_id, name, description, tags, category, rating, review_count,
	                     pricing_model, price_amount, price_period, logo_url, installed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(agent_id) DO UPDATE SET
	 name=excluded.name,
	 description=excluded.description,
	 tags=excluded.tags,
	 category=excluded.category,
	 rating=excluded.rating,
	 review_count=excluded.review_count,
	 pricing_model=excluded.pricing_model,
	 price_amount=excluded.price_amount,
	 price_period=excluded.price_period,
	 logo_url=excluded.logo_url;
	`, in.AgentID, in.Name, in.Description, joinTags(in.Tags), in.Category, in.Rating,
		in.ReviewCount, in.PricingModel, in.PriceAmount, in.PricePeriod, in.LogoURL,
		in.InstalledAt)
	return err
}

// UpdateSnapshot refreshes the listing columns of an already-installed row
// inside tx. installed_at is left alone. Rows that don't exist are skipped.
func (r *InstallRepo) UpdateSnapshot(ctx context.Context, tx *sql.Tx, in Install) error {
	_, err := tx.ExecContext(ctx, `
	UPDATE installs SET
	 name=?, description=?, tags=?, category=?, rating=?, review_count=?,
	 pricing_model=?, price_amount=?, price_period=?, logo_url=?
	WHERE agent_id=?`,
		in.Name, in.Description, joinTags(in.Tags), in.Category, in.Rating,
		in.ReviewCount, in.PricingModel, in.PriceAmount, in.PricePeriod, in.LogoURL,
		in.AgentID)
	return err
}

func (r *InstallRepo) List(ctx context.Context) ([]Install, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT agent_id, name, description, tags, category, rating, review_count,
	       pricing_model, price_amount, price_period, logo_url, installed_at
	FROM installs ORDER BY installed_at DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Install
	for rows.Next() {
		in, err := scanInstall(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

// Get returns the install row for agent_id, or nil when not installed.
func (r *InstallRepo) Get(ctx context.Context, agentID string) (*Install, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT agent_id, name, description, tags, category, rating, review_count,
	       pricing_model, price_amount, price_period, logo_url, installed_at
	FROM installs WHERE agent_id = ?`, agentID)
	in, err := scanInstall(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *InstallRepo) Delete(ctx context.Context, agentID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM installs WHERE agent_id = ?`, agentID)
	return err
}

func (r *InstallRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM installs`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInstall(row rowScanner) (Install, error) {
	var in Install
	var tags string
	err := row.Scan(&in.AgentID, &in.Name, &in.Description, &tags, &in.Category,
		&in.Rating, &in.ReviewCount, &in.PricingModel, &in.PriceAmount,
		&in.PricePeriod, &in.LogoURL, &in.InstalledAt)
	if err != nil {
		return Install{}, err
	}
	in.Tags = splitTags(tags)
	return in, nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

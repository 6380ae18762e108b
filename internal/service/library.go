package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/agentdeck-dev/agentdeck/internal/catalog"
	"github.com/agentdeck-dev/agentdeck/internal/database"
	"github.com/agentdeck-dev/agentdeck/internal/database/repository"
)

// LibraryStore tracks which agents the user has installed. It snapshots the
// listing at install time, so the library keeps rendering even when the
// catalog source is unreachable.
type LibraryStore struct {
	DB       *sql.DB
	Installs *repository.InstallRepo
}

// InstalledAgent pairs a catalog listing with its install metadata.
type InstalledAgent struct {
	Agent       catalog.Agent
	InstalledAt string
}

// Install records an agent into the library. Re-installing refreshes the
// snapshot and keeps the original install timestamp.
func (s *LibraryStore) Install(ctx context.Context, a catalog.Agent) error {
	if a.ID == "" {
		return fmt.Errorf("install: agent has no id")
	}
	return s.Installs.Upsert(ctx, agentToInstall(a, database.Now()))
}

// SyncSnapshots refreshes the stored listing columns of every installed agent
// that is still present in the catalog, in one transaction. It returns how
// many rows were refreshed. Agents no longer in the catalog keep their last
// snapshot.
func (s *LibraryStore) SyncSnapshots(ctx context.Context, agents []catalog.Agent) (int, error) {
	rows, err := s.Installs.List(ctx)
	if err != nil {
		return 0, err
	}
	byID := make(map[string]catalog.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}

	updated := 0
	err = database.WithTx(s.DB, func(tx *sql.Tx) error {
		for _, in := range rows {
			a, ok := byID[in.AgentID]
			if !ok {
				continue
			}
			if err := s.Installs.UpdateSnapshot(ctx, tx, agentToInstall(a, in.InstalledAt)); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// Uninstall removes an agent from the library. Removing an agent that is not
// installed is a no-op.
func (s *LibraryStore) Uninstall(ctx context.Context, agentID string) error {
	return s.Installs.Delete(ctx, agentID)
}

// IsInstalled reports whether the agent is in the library.
func (s *LibraryStore) IsInstalled(ctx context.Context, agentID string) (bool, error) {
	in, err := s.Installs.Get(ctx, agentID)
	if err != nil {
		return false, err
	}
	return in != nil, nil
}

// ListInstalled returns the library newest-first.
func (s *LibraryStore) ListInstalled(ctx context.Context) ([]InstalledAgent, error) {
	rows, err := s.Installs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]InstalledAgent, 0, len(rows))
	for _, in := range rows {
		out = append(out, InstalledAgent{
			Agent:       installToAgent(in),
			InstalledAt: in.InstalledAt.Format("2006-01-02"),
		})
	}
	return out, nil
}

// Count returns the number of installed agents.
func (s *LibraryStore) Count(ctx context.Context) (int, error) {
	return s.Installs.Count(ctx)
}

func agentToInstall(a catalog.Agent, installedAt time.Time) repository.Install {
	return repository.Install{
		AgentID:      a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Tags:         a.Tags,
		Category:     string(a.Category),
		Rating:       a.Rating,
		ReviewCount:  a.ReviewCount,
		PricingModel: string(a.Pricing.Model),
		PriceAmount:  a.Pricing.Amount,
		PricePeriod:  a.Pricing.Period,
		LogoURL:      a.LogoURL,
		InstalledAt:  installedAt,
	}
}

func installToAgent(in repository.Install) catalog.Agent {
	return catalog.Agent{
		ID:          in.AgentID,
		Name:        in.Name,
		Description: in.Description,
		Tags:        in.Tags,
		Category:    catalog.Category(in.Category),
		Rating:      in.Rating,
		ReviewCount: in.ReviewCount,
		Pricing: catalog.Pricing{
			Model:  catalog.PricingModel(in.PricingModel),
			Amount: in.PriceAmount,
			Period: in.PricePeriod,
		},
		LogoURL: in.LogoURL,
	}
}

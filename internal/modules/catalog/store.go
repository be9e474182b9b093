// README: Destination profile store backed by PostgreSQL.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"travelsathi/internal/modules/budget"
	"travelsathi/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Profiles reads every destination with its activities in position order.
func (s *Store) Profiles(ctx context.Context) (map[string]Profile, error) {
	rows, err := s.db.Query(ctx, `
        SELECT key, name, rate_budget, rate_mid_range, rate_luxury,
               local_transport_cost, airport_transport_cost
        FROM destinations`)
	if err != nil {
		return nil, fmt.Errorf("query destinations: %w", err)
	}
	defer rows.Close()

	out := make(map[string]Profile)
	for rows.Next() {
		var key string
		var p Profile
		var rb, rm, rl int64
		if err := rows.Scan(&key, &p.Name, &rb, &rm, &rl, &p.LocalTransportCost, &p.AirportTransportCost); err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		p.DailyBudget = budget.Rates{
			budget.TierBudget:   types.Rupees(rb),
			budget.TierMidRange: types.Rupees(rm),
			budget.TierLuxury:   types.Rupees(rl),
		}
		out[Key(key)] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	arows, err := s.db.Query(ctx, `
        SELECT destination_key, name, category, duration_hours, cost, description
        FROM destination_activities
        ORDER BY destination_key, position`)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer arows.Close()

	for arows.Next() {
		var key string
		var a Activity
		if err := arows.Scan(&key, &a.Name, &a.Category, &a.DurationHours, &a.Cost, &a.Description); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		p, ok := out[Key(key)]
		if !ok {
			continue
		}
		p.Activities = append(p.Activities, a)
		out[Key(key)] = p
	}
	return out, arows.Err()
}

// Upsert writes one profile, replacing its activity list.
func (s *Store) Upsert(ctx context.Context, key string, p Profile) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO destinations (
            key, name, rate_budget, rate_mid_range, rate_luxury,
            local_transport_cost, airport_transport_cost
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (key) DO UPDATE SET
            name = EXCLUDED.name,
            rate_budget = EXCLUDED.rate_budget,
            rate_mid_range = EXCLUDED.rate_mid_range,
            rate_luxury = EXCLUDED.rate_luxury,
            local_transport_cost = EXCLUDED.local_transport_cost,
            airport_transport_cost = EXCLUDED.airport_transport_cost`,
		Key(key), p.Name,
		int64(p.DailyBudget[budget.TierBudget]),
		int64(p.DailyBudget[budget.TierMidRange]),
		int64(p.DailyBudget[budget.TierLuxury]),
		int64(p.LocalTransportCost), int64(p.AirportTransportCost),
	)
	if err != nil {
		return fmt.Errorf("upsert destination %s: %w", key, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM destination_activities WHERE destination_key = $1`, Key(key)); err != nil {
		return err
	}
	for i, a := range p.Activities {
		_, err := tx.Exec(ctx, `
            INSERT INTO destination_activities (
                destination_key, position, name, category, duration_hours, cost, description
            ) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			Key(key), i, a.Name, string(a.Category), a.DurationHours, int64(a.Cost), a.Description,
		)
		if err != nil {
			return fmt.Errorf("insert activity %s/%d: %w", key, i, err)
		}
	}
	return tx.Commit(ctx)
}

// Load overlays the stored profiles on base.
func (s *Store) Load(ctx context.Context, base Data) (*Catalog, error) {
	profiles, err := s.Profiles(ctx)
	if err != nil {
		return nil, err
	}
	return New(Merge(base, Data{Profiles: profiles})), nil
}

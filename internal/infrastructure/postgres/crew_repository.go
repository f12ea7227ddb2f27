package postgres

import (
	"context"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/repository"
)

var _ repository.CrewRepository = (*CrewRepo)(nil)

// CrewRepo implementación de CrewRepository sobre PostgreSQL.
type CrewRepo struct {
	q Querier
}

// NewCrewRepository construye el adaptador del personal.
func NewCrewRepository(q Querier) *CrewRepo {
	return &CrewRepo{q: q}
}

// ListCrew devuelve el personal en orden de alta (el leaderboard desempata por este orden).
func (r *CrewRepo) ListCrew(ctx context.Context) ([]entity.Crew, error) {
	query := `
		SELECT crew_id, COALESCE(first_name, ''), COALESCE(last_name, '')
		FROM crew
		ORDER BY seq`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, queryError("crew.ListCrew", err)
	}
	defer rows.Close()

	var out []entity.Crew
	for rows.Next() {
		var c entity.Crew
		if err := rows.Scan(&c.CrewID, &c.FirstName, &c.LastName); err != nil {
			return nil, queryError("crew.ListCrew scan", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("crew.ListCrew rows", err)
	}
	return out, nil
}

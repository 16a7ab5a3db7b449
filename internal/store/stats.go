package store

import (
	"context"
	"math"

	"impact-log/internal/models"
)

type Stats struct {
	TotalReports   int64            `json:"total_reports"`
	Solved         int64            `json:"solved"`
	ResolutionRate float64          `json:"resolution_rate"`
	Categories     map[string]int64 `json:"categories"`
}

type categoryRow struct {
	Category string
	Total    int64
	Solved   int64
}

// Stats aggregates all logs in one grouped query.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	var rows []categoryRow
	err := s.db.WithContext(ctx).
		Model(&models.ImpactLog{}).
		Select("category, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS solved", models.StatusSolved).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return summarize(rows), nil
}

func summarize(rows []categoryRow) *Stats {
	st := &Stats{Categories: make(map[string]int64, len(rows))}
	for _, r := range rows {
		st.TotalReports += r.Total
		st.Solved += r.Solved
		st.Categories[r.Category] = r.Total
	}
	st.ResolutionRate = ResolutionRate(st.Solved, st.TotalReports)
	return st
}

// ResolutionRate is solved/total as a percentage rounded to one decimal; 0 when total is 0.
func ResolutionRate(solved, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(solved)/float64(total)*1000) / 10
}

package sqlc

import (
	"context"

	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// AnalyticsManager counts finished matches by result.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) RecordMatchResult(ctx context.Context, result mb.MatchResult) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	return a.queries.IncrementMatchResultCount(ctx, result.String())
}

func (a *AnalyticsManager) GetMatchResultCount(ctx context.Context, result mb.MatchResult) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	return a.queries.GetMatchResultCount(ctx, result.String())
}

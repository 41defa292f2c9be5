package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/matchday/internal/domain/stats"
	"github.com/riskibarqy/matchday/internal/domain/store"
)

const defaultStatsWorkers = 4

// StatsService recomputes the season projections on every request.
type StatsService struct {
	repos   store.Repositories
	workers int
}

func NewStatsService(repos store.Repositories, workers int) *StatsService {
	if workers <= 0 {
		workers = defaultStatsWorkers
	}
	return &StatsService{
		repos:   repos,
		workers: workers,
	}
}

func (s *StatsService) PlayerSummaries(ctx context.Context) ([]stats.PlayerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerSummaries")
	defer span.End()

	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	ix := stats.NewIndex(ds)

	results := make(chan stats.PlayerSummary, len(ds.Players))

	workerPool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("%w: create worker pool: %w", ErrDependencyUnavailable, err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, p := range ds.Players {
		p := p
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			results <- ix.Player(p)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("%w: submit summary to worker pool: %w", ErrDependencyUnavailable, err)
		}
	}

	workers.Wait()
	close(results)

	out := make([]stats.PlayerSummary, 0, len(ds.Players))
	for row := range results {
		out = append(out, row)
	}
	stats.SortSummaries(out)
	return out, nil
}

func (s *StatsService) PlayerSummary(ctx context.Context, playerID int64) (stats.PlayerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerSummary")
	defer span.End()

	if playerID <= 0 {
		return stats.PlayerSummary{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	ds, err := s.loadDataset(ctx)
	if err != nil {
		return stats.PlayerSummary{}, err
	}
	for _, p := range ds.Players {
		if p.ID == playerID {
			return stats.NewIndex(ds).Player(p), nil
		}
	}
	return stats.PlayerSummary{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
}

func (s *StatsService) MatchReport(ctx context.Context, matchID int64) (stats.MatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.MatchReport")
	defer span.End()

	if matchID <= 0 {
		return stats.MatchReport{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	ds, err := s.loadDataset(ctx)
	if err != nil {
		return stats.MatchReport{}, err
	}
	for _, m := range ds.Matches {
		if m.ID == matchID {
			return stats.NewIndex(ds).Match(m), nil
		}
	}
	return stats.MatchReport{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
}

func (s *StatsService) TeamRecord(ctx context.Context) (stats.TeamRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamRecord")
	defer span.End()

	matches, err := s.repos.Matches.List(ctx)
	if err != nil {
		return stats.TeamRecord{}, fmt.Errorf("list matches: %w", err)
	}
	return stats.BuildTeamRecord(matches), nil
}

func (s *StatsService) AttendanceSummaries(ctx context.Context) ([]stats.AttendanceSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.AttendanceSummaries")
	defer span.End()

	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	return stats.AttendanceSummaries(ds.Players, ds.Attendances), nil
}

// loadDataset reads every table the aggregator needs in parallel.
func (s *StatsService) loadDataset(ctx context.Context) (stats.Dataset, error) {
	var ds stats.Dataset

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.repos.Players.List(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		ds.Players = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.repos.Matches.List(ctx)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		ds.Matches = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.repos.Formations.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list formations: %w", err)
		}
		ds.Formations = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.repos.Events.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		ds.Events = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.repos.Attendances.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list attendances: %w", err)
		}
		ds.Attendances = items
		return nil
	})

	if err := p.Wait(); err != nil {
		return stats.Dataset{}, err
	}
	return ds, nil
}

package services

import (
	"context"
	"time"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/google/uuid"
)

type analyticsService struct {
	repo storage.AnalyticsRepository
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(repo storage.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

// statusCounts lists every status in reporting order, zero-filled.
func statusCounts(counts map[models.ApplicationStatus]int) []dto.StatusCount {
	out := make([]dto.StatusCount, 0, len(models.AllApplicationStatuses))
	for _, status := range models.AllApplicationStatuses {
		out = append(out, dto.StatusCount{Status: status, Count: counts[status]})
	}
	return out
}

// statusMetrics lists every status in reporting order; missing averages stay null.
func statusMetrics(averages map[models.ApplicationStatus]float64) []dto.StatusMetric {
	out := make([]dto.StatusMetric, 0, len(models.AllApplicationStatuses))
	for _, status := range models.AllApplicationStatuses {
		metric := dto.StatusMetric{Status: status}
		if avg, ok := averages[status]; ok {
			metric.AvgDays = ptr(avg)
		}
		out = append(out, metric)
	}
	return out
}

func (s *analyticsService) Summary(ctx context.Context, userID uuid.UUID) (*dto.SummaryResponse, error) {
	counts, err := s.repo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "summarizing applications")
	}

	total := 0
	for _, count := range counts {
		total += count
	}
	return &dto.SummaryResponse{Total: total, ByStatus: statusCounts(counts)}, nil
}

func (s *analyticsService) TimeToStatus(ctx context.Context, userID uuid.UUID) (*dto.TimeToStatusResponse, error) {
	averages, err := s.repo.AvgDaysToStatus(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "computing time to status")
	}
	return &dto.TimeToStatusResponse{Metrics: statusMetrics(averages)}, nil
}

func (s *analyticsService) StatusDuration(ctx context.Context, userID uuid.UUID) (*dto.StatusDurationResponse, error) {
	changes, err := s.repo.ListStatusChanges(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "computing status durations")
	}
	return &dto.StatusDurationResponse{Metrics: statusMetrics(averageStatusDurations(changes))}, nil
}

// averageStatusDurations attributes the time between consecutive status changes of an
// application to the status it was leaving. changes must be ordered by application and
// then (created_at, id). Negative intervals are dropped; the latest status of each
// application is still open and contributes nothing.
func averageStatusDurations(changes []storage.StatusChange) map[models.ApplicationStatus]float64 {
	type lastChange struct {
		status models.ApplicationStatus
		at     time.Time
	}
	sums := make(map[models.ApplicationStatus]float64)
	counts := make(map[models.ApplicationStatus]int)
	last := make(map[uuid.UUID]lastChange)

	for _, change := range changes {
		if prev, ok := last[change.ApplicationID]; ok {
			days := change.CreatedAt.Sub(prev.at).Hours() / 24
			if days >= 0 {
				sums[prev.status] += days
				counts[prev.status]++
			}
		}
		last[change.ApplicationID] = lastChange{status: change.ToStatus, at: change.CreatedAt}
	}

	averages := make(map[models.ApplicationStatus]float64, len(counts))
	for status, n := range counts {
		averages[status] = sums[status] / float64(n)
	}
	return averages
}

// Funnel counts applications currently at or past each pipeline step.
// Rejected applications sit outside the pipeline and count nowhere.
func (s *analyticsService) Funnel(ctx context.Context, userID uuid.UUID) (*dto.FunnelResponse, error) {
	counts, err := s.repo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "computing funnel")
	}

	steps := make([]dto.FunnelStep, len(models.StatusPipeline))
	running := 0
	for i := len(models.StatusPipeline) - 1; i >= 0; i-- {
		step := models.StatusPipeline[i]
		running += counts[step]
		steps[i] = dto.FunnelStep{Step: step, Count: running}
	}
	return &dto.FunnelResponse{Steps: steps}, nil
}

func (s *analyticsService) RecruiterPerformance(ctx context.Context, userID uuid.UUID) (*dto.RecruiterPerformanceResponse, error) {
	totals, err := s.repo.CountByRecruiter(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "computing recruiter performance")
	}

	recruiters := make([]dto.RecruiterCount, 0, len(totals))
	for _, t := range totals {
		recruiters = append(recruiters, dto.RecruiterCount{RecruiterEmail: t.RecruiterEmail, Count: t.Total})
	}
	return &dto.RecruiterPerformanceResponse{Recruiters: recruiters}, nil
}

func (s *analyticsService) RecruiterPerformanceV2(ctx context.Context, userID uuid.UUID) (*dto.RecruiterPerformanceV2Response, error) {
	totals, err := s.repo.CountByRecruiter(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "computing recruiter performance")
	}
	rows, err := s.repo.CountByRecruiterAndStatus(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "computing recruiter status breakdown")
	}

	byRecruiter := make(map[string]map[models.ApplicationStatus]int)
	for _, row := range rows {
		if byRecruiter[row.RecruiterEmail] == nil {
			byRecruiter[row.RecruiterEmail] = make(map[models.ApplicationStatus]int)
		}
		byRecruiter[row.RecruiterEmail][row.Status] = row.Count
	}

	recruiters := make([]dto.RecruiterPerformanceV2Item, 0, len(totals))
	for _, t := range totals {
		recruiters = append(recruiters, dto.RecruiterPerformanceV2Item{
			RecruiterEmail:  t.RecruiterEmail,
			Total:           t.Total,
			ByStatus:        statusCounts(byRecruiter[t.RecruiterEmail]),
			LastContactedAt: t.LastContactedAt,
		})
	}
	return &dto.RecruiterPerformanceV2Response{Recruiters: recruiters}, nil
}

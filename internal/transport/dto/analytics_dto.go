package dto

import (
	"time"

	"job-tracker-api/internal/models"
)

type StatusCount struct {
	Status models.ApplicationStatus `json:"status"`
	Count  int                      `json:"count"`
}

type SummaryResponse struct {
	Total    int           `json:"total"`
	ByStatus []StatusCount `json:"by_status"`
}

// StatusMetric carries an average in days; AvgDays is null when nothing was measured.
type StatusMetric struct {
	Status  models.ApplicationStatus `json:"status"`
	AvgDays *float64                 `json:"avg_days"`
}

type TimeToStatusResponse struct {
	Metrics []StatusMetric `json:"metrics"`
}

type StatusDurationResponse struct {
	Metrics []StatusMetric `json:"metrics"`
}

type FunnelStep struct {
	Step  models.ApplicationStatus `json:"step"`
	Count int                      `json:"count"`
}

type FunnelResponse struct {
	Steps []FunnelStep `json:"steps"`
}

type RecruiterCount struct {
	RecruiterEmail string `json:"recruiter_email"`
	Count          int    `json:"count"`
}

type RecruiterPerformanceResponse struct {
	Recruiters []RecruiterCount `json:"recruiters"`
}

type RecruiterPerformanceV2Item struct {
	RecruiterEmail  string        `json:"recruiter_email"`
	Total           int           `json:"total"`
	ByStatus        []StatusCount `json:"by_status"`
	LastContactedAt *time.Time    `json:"last_contacted_at"`
}

type RecruiterPerformanceV2Response struct {
	Recruiters []RecruiterPerformanceV2Item `json:"recruiters"`
}

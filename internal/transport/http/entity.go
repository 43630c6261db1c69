package httpt

import (
	"time"

	"freightqa/internal/entity"

	"github.com/google/uuid"
)

type (
	ErrorResponse struct {
		Error   string `json:"error"`
		Details string `json:"details,omitempty"`
	}

	// ReportSummary is a stored report without its violations.
	ReportSummary struct {
		ReportID   uuid.UUID      `json:"reportId"`
		BatchID    *uuid.UUID     `json:"batchId,omitempty"`
		Kind       entity.Kind    `json:"kind"`
		Source     entity.Source  `json:"source"`
		SubjectKey string         `json:"subjectKey"`
		CreatedAt  time.Time      `json:"createdAt"`
		IsValid    bool           `json:"isValid"`
		Summary    entity.Summary `json:"summary"`
	}

	ReportListResponse struct {
		Reports []ReportSummary `json:"reports"`
		Count   int             `json:"count"`
	}

	StatsResponse struct {
		Kinds []entity.KindStats `json:"kinds"`
	}
)

func newReportSummary(r *entity.Report) ReportSummary {
	s := ReportSummary{
		ReportID:   r.ID,
		BatchID:    r.BatchID,
		Kind:       r.Kind,
		Source:     r.Source,
		SubjectKey: r.SubjectKey,
		CreatedAt:  r.CreatedAt,
	}
	if r.Result != nil {
		s.IsValid = r.Result.IsValid
		s.Summary = r.Result.Summary
	}
	return s
}

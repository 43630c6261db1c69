package entity

import (
	"time"

	"github.com/google/uuid"
)

type (
	Report struct {
		ID         uuid.UUID         `json:"reportId"`
		BatchID    *uuid.UUID        `json:"batchId,omitempty"`
		Kind       Kind              `json:"kind"`
		Source     Source            `json:"source"`
		SubjectKey string            `json:"subjectKey"`
		CreatedAt  time.Time         `json:"createdAt"`
		Result     *ValidationResult `json:"result"`
	}

	BatchReport struct {
		BatchID uuid.UUID    `json:"batchId"`
		Reports []*Report    `json:"reports"`
		Result  *BatchResult `json:"result"`
	}

	ReportFilter struct {
		Kind  Kind
		Valid *bool
		Limit uint64
	}

	KindStats struct {
		Kind     Kind  `json:"kind"`
		Reports  int64 `json:"reports"`
		Valid    int64 `json:"valid"`
		Errors   int64 `json:"errors"`
		Warnings int64 `json:"warnings"`
		Infos    int64 `json:"infos"`
	}
)

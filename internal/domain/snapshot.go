package domain

import "time"

// ReportSnapshotEntry representa um relatório já calculado e armazenado no
// banco, chave de cache é a tupla de filtros (início, fim, cliente)
type ReportSnapshotEntry struct {
	ID         string         `json:"id"`
	StartDate  time.Time      `json:"start_date"`
	EndDate    time.Time      `json:"end_date"`
	CustomerID *string        `json:"customer_id,omitempty"`
	Summary    *ReportSummary `json:"summary"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

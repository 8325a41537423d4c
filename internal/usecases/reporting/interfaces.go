package reporting

import (
	"github.com/Acedi-a/spa-report-api/internal/domain"
)

// Reporter produz relatórios de vendas para uma janela de filtros
type Reporter interface {
	GetSalesReport(filters *domain.ReportFilters) (*domain.SalesReportResponse, error)
	InvalidateSnapshot(filters *domain.ReportFilters) (int64, error)
}

package salonapi

import (
	"time"

	salonapidomain "github.com/Acedi-a/spa-report-api/infrastructure/integrator/salonapi/domain"
	"github.com/Acedi-a/spa-report-api/infrastructure/integrator/salonapi/salonclient"
	"github.com/Acedi-a/spa-report-api/internal/config"
	"github.com/Acedi-a/spa-report-api/internal/domain"
)

// SalonIntegrator é a fachada sobre a API do salão usada pelos casos de uso
type SalonIntegrator interface {
	GetSalesReport(filters *domain.ReportFilters) (*salonapidomain.ReporteVentas, error)
	GetSalesByQR(qrCode string) ([]salonapidomain.Venta, error)
}

type SalonService struct {
	cfg    *config.Config
	Client salonclient.Client
}

func New(cfg *config.Config, client salonclient.Client) SalonIntegrator {
	return &SalonService{
		cfg:    cfg,
		Client: client,
	}
}

// GetSalesReport busca o relatório bruto da janela na API do salão. O filtro
// por data e cliente é todo do lado do servidor.
func (s *SalonService) GetSalesReport(filters *domain.ReportFilters) (*salonapidomain.ReporteVentas, error) {
	params := salonclient.ReporteVentasParams{
		FechaInicio: filters.StartDate.Format(time.DateOnly),
		FechaFin:    filters.EndDate.Format(time.DateOnly),
	}

	if filters.CustomerID != nil {
		params.ClienteID = *filters.CustomerID
	}

	return s.Client.GetReporteVentas(params)
}

func (s *SalonService) GetSalesByQR(qrCode string) ([]salonapidomain.Venta, error) {
	return s.Client.GetHistorialByQR(qrCode)
}

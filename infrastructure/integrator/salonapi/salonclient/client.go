package salonclient

import (
	"net/http"
	"time"

	"github.com/Acedi-a/spa-report-api/internal/config"
	salonapidomain "github.com/Acedi-a/spa-report-api/infrastructure/integrator/salonapi/domain"
)

type Client interface {
	GetReporteVentas(params ReporteVentasParams) (*salonapidomain.ReporteVentas, error)
	GetHistorialByQR(qrCode string) ([]salonapidomain.Venta, error)
}

type SalonClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.SalonAPI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SalonClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

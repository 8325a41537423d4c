package salonclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	salonapidomain "github.com/Acedi-a/spa-report-api/infrastructure/integrator/salonapi/domain"
	"github.com/Acedi-a/spa-report-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ReporteVentasParams struct {
	FechaInicio string
	FechaFin    string
	ClienteID   string
}

// GetReporteVentas consulta o relatório de vendas do período na API do salão.
// Datas no formato YYYY-MM-DD; cliente é opcional.
func (c *SalonClient) GetReporteVentas(params ReporteVentasParams) (*salonapidomain.ReporteVentas, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.SalonAPI.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base da API do salão")
	}
	endpoint.Path = path.Join(endpoint.Path, "/Reportes/ventas")

	query := endpoint.Query()
	query.Set("fechaInicio", params.FechaInicio)
	query.Set("fechaFin", params.FechaFin)
	if params.ClienteID != "" {
		query.Set("clienteId", params.ClienteID)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de relatório")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.SalonAPI.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição de relatório")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição de relatório falhou com status: %s", resp.Status)
	}

	response := &salonapidomain.ReporteVentas{}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta de relatório")
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("Resposta do relatório de vendas: %s", utils.PrettyJson(response))
	}

	return response, nil
}

package salonclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"

	salonapidomain "github.com/Acedi-a/spa-report-api/infrastructure/integrator/salonapi/domain"
)

// GetHistorialByQR busca as vendas de um cliente a partir do QR do cartão de
// fidelidade
func (c *SalonClient) GetHistorialByQR(qrCode string) ([]salonapidomain.Venta, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.SalonAPI.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base da API do salão")
	}
	endpoint.Path = path.Join(endpoint.Path, "/Ventas/historial", qrCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de histórico")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.SalonAPI.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição de histórico")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição de histórico falhou com status: %s", resp.Status)
	}

	var response []salonapidomain.Venta
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta de histórico")
	}

	return response, nil
}

package history

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Acedi-a/spa-report-api/infrastructure/integrator/salonapi"
	"github.com/Acedi-a/spa-report-api/internal/config"
	"github.com/Acedi-a/spa-report-api/internal/domain"
	"github.com/Acedi-a/spa-report-api/pkg/utils"
)

// Historian resolve um QR de cartão de fidelidade para o histórico de compras
// do cliente
type Historian interface {
	GetCustomerHistoryByQR(qrCode string) (*domain.CustomerHistory, error)
}

type Service struct {
	cfg          *config.Config
	salonService salonapi.SalonIntegrator
}

func NewService(cfg *config.Config, salonService salonapi.SalonIntegrator) Historian {
	return &Service{
		cfg:          cfg,
		salonService: salonService,
	}
}

// GetCustomerHistoryByQR busca as vendas do cliente na API do salão e deriva
// os totais do histórico. QR desconhecido devolve histórico nulo, não erro.
func (s *Service) GetCustomerHistoryByQR(qrCode string) (*domain.CustomerHistory, error) {
	if qrCode == "" {
		return nil, fmt.Errorf("é necessário informar o código QR")
	}

	ventas, err := s.salonService.GetSalesByQR(qrCode)
	if err != nil {
		logrus.WithError(err).WithField("qr_code", qrCode).Warn("Erro ao obter histórico da API do salão")
		return nil, err
	}

	if len(ventas) == 0 {
		return nil, nil
	}

	hist := &domain.CustomerHistory{
		QRCode: qrCode,
		Sales:  make([]*domain.SaleTransaction, 0, len(ventas)),
	}

	// O nome e o ID do cliente vêm denormalizados na primeira venda
	if ventas[0].Cliente != nil {
		hist.CustomerID = ventas[0].Cliente.ID
		hist.Name = ventas[0].Cliente.Nombre
	} else {
		hist.CustomerID = ventas[0].ClienteID
	}

	var totalSpent float64

	for _, venta := range ventas {
		tx := venta.ToDomain()
		hist.Sales = append(hist.Sales, tx)

		totalSpent += tx.SafeTotal()

		if !tx.Timestamp.IsZero() && (hist.LastPurchase == nil || tx.Timestamp.After(*hist.LastPurchase)) {
			ts := tx.Timestamp
			hist.LastPurchase = &ts
		}
	}

	// Histórico exibido do mais recente para o mais antigo
	sort.Slice(hist.Sales, func(i, j int) bool {
		return hist.Sales[i].Timestamp.After(hist.Sales[j].Timestamp)
	})

	hist.SalesCount = len(hist.Sales)
	hist.TotalSpent = utils.RoundWithTwoDecimalPlace(totalSpent)

	if hist.SalesCount > 0 {
		hist.AverageSpent = utils.RoundWithTwoDecimalPlace(totalSpent / float64(hist.SalesCount))
	}

	return hist, nil
}

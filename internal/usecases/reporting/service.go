package reporting

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Acedi-a/spa-report-api/infrastructure/integrator/salonapi"
	"github.com/Acedi-a/spa-report-api/infrastructure/repository"
	"github.com/Acedi-a/spa-report-api/internal/config"
	"github.com/Acedi-a/spa-report-api/internal/domain"
)

// Tolerância da contraprova entre os totais do servidor e os do agregador
const crossCheckTolerance = 1e-6

// Service implementa Reporter: busca a janela de vendas na API do salão,
// agrega localmente e mantém o cache de snapshots no banco
type Service struct {
	cfg          *config.Config
	salonService salonapi.SalonIntegrator
	snapshotRepo repository.ReportSnapshotRepository
	useCache     bool
}

func NewService(cfg *config.Config, salonService salonapi.SalonIntegrator) Reporter {
	return &Service{
		cfg:          cfg,
		salonService: salonService,
		snapshotRepo: nil,   // Inicialmente null
		useCache:     false, // Inicialmente não usa cache
	}
}

// WithCache habilita o cache read-through de snapshots
func (s *Service) WithCache(snapshotRepo repository.ReportSnapshotRepository) *Service {
	s.snapshotRepo = snapshotRepo
	s.useCache = snapshotRepo != nil

	return s
}

// GetSalesReport devolve o relatório da janela pedida. Com cache habilitado,
// janelas já fechadas são servidas do snapshot; a janela que inclui o dia
// corrente é sempre recalculada.
func (s *Service) GetSalesReport(filters *domain.ReportFilters) (*domain.SalesReportResponse, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	if s.useCache {
		entry, err := s.snapshotRepo.GetByFilters(filters)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
			}).Warn("Erro ao buscar snapshot de relatório no banco de dados")
		}

		if entry != nil && entry.Summary != nil {
			logrus.WithFields(logrus.Fields{
				"snapshot_id": entry.ID,
				"start_date":  filters.StartDate.Format(time.DateOnly),
				"end_date":    filters.EndDate.Format(time.DateOnly),
			}).Debug("Relatório servido do snapshot")

			return &domain.SalesReportResponse{
				Filters:   filters,
				Summary:   entry.Summary,
				FromCache: true,
			}, nil
		}
	}

	summary, err := s.computeReport(filters)
	if err != nil {
		return nil, err
	}

	if s.useCache && s.windowClosed(filters) {
		entry := &domain.ReportSnapshotEntry{
			StartDate:  *filters.StartDate,
			EndDate:    *filters.EndDate,
			CustomerID: filters.CustomerID,
			Summary:    summary,
		}

		if err := s.snapshotRepo.SaveOrUpdate(entry); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
			}).Warn("Erro ao salvar snapshot de relatório no banco de dados")
		}
	}

	return &domain.SalesReportResponse{
		Filters: filters,
		Summary: summary,
	}, nil
}

// InvalidateSnapshot remove o snapshot da tupla de filtros e devolve quantos
// foram removidos. É a substituição explícita da invalidação automática que o
// painel tinha na biblioteca de cache do frontend.
func (s *Service) InvalidateSnapshot(filters *domain.ReportFilters) (int64, error) {
	if err := validateFilters(filters); err != nil {
		return 0, err
	}

	if !s.useCache {
		return 0, nil
	}

	deleted, err := s.snapshotRepo.DeleteByFilters(filters)
	if err != nil {
		return 0, fmt.Errorf("erro ao invalidar snapshot de relatório: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"deleted":    deleted,
		"start_date": filters.StartDate.Format(time.DateOnly),
		"end_date":   filters.EndDate.Format(time.DateOnly),
	}).Info("Snapshot de relatório invalidado")

	return deleted, nil
}

// computeReport busca a janela na API do salão e roda o agregador local
func (s *Service) computeReport(filters *domain.ReportFilters) (*domain.ReportSummary, error) {
	report, err := s.salonService.GetSalesReport(filters)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Warn("Erro ao obter vendas da API do salão")
		return nil, err
	}

	transactions := make([]*domain.SaleTransaction, 0, len(report.Detalles))
	for _, venta := range report.Detalles {
		transactions = append(transactions, venta.ToDomain())
	}

	summary := Aggregate(transactions)

	// Contraprova dos totais escalares do servidor; o agregador local é a
	// fonte da resposta
	crossCheckServerTotals(report.TotalIngresos, report.TotalTransacciones, summary)

	return summary, nil
}

func crossCheckServerTotals(serverRevenue float64, serverCount int, summary *domain.ReportSummary) {
	if serverCount != 0 && serverCount != summary.TotalTransactions {
		logrus.WithFields(logrus.Fields{
			"server_count": serverCount,
			"local_count":  summary.TotalTransactions,
		}).Warn("Contagem de transações do servidor diverge do agregador local")
	}

	if serverRevenue != 0 && math.Abs(serverRevenue-summary.TotalRevenue) > crossCheckTolerance {
		logrus.WithFields(logrus.Fields{
			"server_revenue": serverRevenue,
			"local_revenue":  summary.TotalRevenue,
		}).Warn("Receita total do servidor diverge do agregador local")
	}
}

// windowClosed informa se a janela termina antes do dia corrente. Janelas que
// incluem hoje ainda recebem vendas e não devem ser congeladas no cache.
func (s *Service) windowClosed(filters *domain.ReportFilters) bool {
	today := time.Now().Format(time.DateOnly)

	return filters.EndDate.Format(time.DateOnly) < today
}

func validateFilters(filters *domain.ReportFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil ||
		filters.StartDate.IsZero() || filters.EndDate.IsZero() {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	return nil
}

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Acedi-a/spa-report-api/internal/domain"
	"github.com/Acedi-a/spa-report-api/internal/usecases/reporting"
	"github.com/Acedi-a/spa-report-api/pkg/apiErrors"
	"github.com/Acedi-a/spa-report-api/pkg/log"
	"github.com/Acedi-a/spa-report-api/pkg/utils"
)

// parseReportFilters extrai e valida os filtros de relatório da query string.
// Filtros rejeitados já saem com a resposta de erro escrita.
func parseReportFilters(w http.ResponseWriter, r *http.Request, logger log.Logger) (*domain.ReportFilters, bool) {
	if r.URL.Query().Get("start_date") == "" || r.URL.Query().Get("end_date") == "" {
		logger.Warn("reports: missing start_date or end_date parameter")

		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar as datas de início e fim", nil)
		return nil, false
	}

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": r.URL.Query().Get("start_date"),
			"error":      err.Error(),
		}).Warn("reports: invalid start_date parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": r.URL.Query().Get("end_date"),
			"error":    err.Error(),
		}).Warn("reports: invalid end_date parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
		return nil, false
	}

	if startDate.After(*endDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A data de início não pode ser posterior à data de fim", nil)
		return nil, false
	}

	filters := &domain.ReportFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		filters.CustomerID = &customerID
	}

	return filters, true
}

func GetSalesReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r, logger)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Debug("reports: fetching sales report with filters")

		report, err := service.GetSalesReport(filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("reports: failed to build sales report")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"total_transactions": report.Summary.TotalTransactions,
			"from_cache":         report.FromCache,
		}).Info("reports: sales report built successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// InvalidateSalesReport remove o snapshot em cache para os filtros informados
func InvalidateSalesReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r, logger)
		if !ok {
			return
		}

		deleted, err := service.InvalidateSnapshot(filters)
		if err != nil {
			logger.WithError(err).Error("reports: failed to invalidate report snapshot")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		if deleted == 0 {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
			}).Info("reports: no snapshot found for filters")

			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Nenhum snapshot encontrado para os filtros informados", nil)
			return
		}

		logger.WithFields(log.Fields{
			"deleted":    deleted,
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Info("reports: report snapshot invalidated")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Snapshot invalidado com sucesso",
			"deleted": deleted,
		})
	})
}

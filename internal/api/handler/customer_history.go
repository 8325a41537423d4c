package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Acedi-a/spa-report-api/internal/usecases/history"
	"github.com/Acedi-a/spa-report-api/pkg/apiErrors"
	"github.com/Acedi-a/spa-report-api/pkg/log"
)

func GetCustomerHistoryByQR(service history.Historian) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		qrCode := httprouter.ParamsFromContext(r.Context()).ByName("qr")
		if qrCode == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "QR code não informado", nil)
			return
		}

		logger.WithField("qr_code", qrCode).Info("history: fetching customer history by QR code")

		customerHistory, err := service.GetCustomerHistoryByQR(qrCode)
		if err != nil {
			logger.WithFields(log.Fields{
				"qr_code": qrCode,
				"error":   err.Error(),
			}).Error("history: failed to get customer history")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		if customerHistory == nil {
			logger.WithField("qr_code", qrCode).Info("history: no sales found for QR code")

			apiErrors.WriteError(w, apiErrors.ErrCustomerNotFound, "Nenhuma venda encontrada para o QR code informado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customerHistory); err != nil {
			logger.WithError(err).Error("history: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

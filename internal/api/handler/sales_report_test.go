package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	reportingmocks "github.com/Acedi-a/spa-report-api/internal/usecases/reporting/mocks"
)

func TestInvalidateSalesReport(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setup          func(mockReporter *reportingmocks.MockReporter)
		expectedStatus int
	}{
		{
			name:  "Snapshot existente é removido",
			query: "start_date=2024-01-10&end_date=2024-01-15",
			setup: func(mockReporter *reportingmocks.MockReporter) {
				mockReporter.EXPECT().
					InvalidateSnapshot(gomock.Any()).
					Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Sem snapshot para os filtros devolve 404",
			query: "start_date=2024-01-10&end_date=2024-01-15",
			setup: func(mockReporter *reportingmocks.MockReporter) {
				mockReporter.EXPECT().
					InvalidateSnapshot(gomock.Any()).
					Return(int64(0), nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Datas ausentes devolvem 400 sem chamar o serviço",
			query:          "",
			setup:          func(mockReporter *reportingmocks.MockReporter) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Data malformada devolve 400 sem chamar o serviço",
			query:          "start_date=10-01-2024&end_date=2024-01-15",
			setup:          func(mockReporter *reportingmocks.MockReporter) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReporter := reportingmocks.NewMockReporter(ctrl)
			tt.setup(mockReporter)

			req := httptest.NewRequest(http.MethodPost, "/v1/reports/sales/invalidate?"+tt.query, nil)
			rec := httptest.NewRecorder()

			InvalidateSalesReport(mockReporter).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

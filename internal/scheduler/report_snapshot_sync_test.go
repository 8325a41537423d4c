package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Acedi-a/spa-report-api/infrastructure/repository/mocks"
	"github.com/Acedi-a/spa-report-api/internal/domain"
	reportingmocks "github.com/Acedi-a/spa-report-api/internal/usecases/reporting/mocks"
)

func TestReportSnapshotSyncService_syncReportSnapshots(t *testing.T) {
	tests := []struct {
		name     string
		config   ReportSnapshotSyncConfig
		setup    func(mockReporter *reportingmocks.MockReporter, mockRepo *mocks.MockReportSnapshotRepository)
		validate func(t *testing.T, service *ReportSnapshotSyncService)
	}{
		{
			name: "Pré-calcula um dia de lookback e aplica retenção",
			config: ReportSnapshotSyncConfig{
				LookbackDays:  1,
				RetentionDays: 90,
				SyncEnabled:   true,
			},
			setup: func(mockReporter *reportingmocks.MockReporter, mockRepo *mocks.MockReportSnapshotRepository) {
				yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)

				mockReporter.EXPECT().
					InvalidateSnapshot(gomock.Any()).
					DoAndReturn(func(filters *domain.ReportFilters) (int64, error) {
						assert.Equal(t, yesterday, filters.StartDate.Format(time.DateOnly))
						assert.Equal(t, yesterday, filters.EndDate.Format(time.DateOnly))
						return 1, nil
					})

				mockReporter.EXPECT().
					GetSalesReport(gomock.Any()).
					Return(&domain.SalesReportResponse{Summary: &domain.ReportSummary{}}, nil)

				mockRepo.EXPECT().
					DeleteOlderThan(90).
					Return(int64(2), nil)
			},
			validate: func(t *testing.T, service *ReportSnapshotSyncService) {
				assert.False(t, service.syncRunning)
				assert.False(t, service.lastSyncStartedAt.IsZero())
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Lookback de três dias gera três snapshots",
			config: ReportSnapshotSyncConfig{
				LookbackDays:  3,
				RetentionDays: 0,
				SyncEnabled:   true,
			},
			setup: func(mockReporter *reportingmocks.MockReporter, mockRepo *mocks.MockReportSnapshotRepository) {
				mockReporter.EXPECT().
					InvalidateSnapshot(gomock.Any()).
					Return(int64(1), nil).
					Times(3)

				mockReporter.EXPECT().
					GetSalesReport(gomock.Any()).
					Return(&domain.SalesReportResponse{Summary: &domain.ReportSummary{}}, nil).
					Times(3)

				// Retenção zero não toca no repositório
			},
			validate: func(t *testing.T, service *ReportSnapshotSyncService) {
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Erro em um dia não interrompe os demais",
			config: ReportSnapshotSyncConfig{
				LookbackDays:  2,
				RetentionDays: 0,
				SyncEnabled:   true,
			},
			setup: func(mockReporter *reportingmocks.MockReporter, mockRepo *mocks.MockReportSnapshotRepository) {
				mockReporter.EXPECT().
					InvalidateSnapshot(gomock.Any()).
					Return(int64(1), nil).
					Times(2)

				first := mockReporter.EXPECT().
					GetSalesReport(gomock.Any()).
					Return(nil, fmt.Errorf("api do salão indisponível"))

				mockReporter.EXPECT().
					GetSalesReport(gomock.Any()).
					Return(&domain.SalesReportResponse{Summary: &domain.ReportSummary{}}, nil).
					After(first)
			},
			validate: func(t *testing.T, service *ReportSnapshotSyncService) {
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Erro de invalidação não impede o recálculo",
			config: ReportSnapshotSyncConfig{
				LookbackDays:  1,
				RetentionDays: 0,
				SyncEnabled:   true,
			},
			setup: func(mockReporter *reportingmocks.MockReporter, mockRepo *mocks.MockReportSnapshotRepository) {
				mockReporter.EXPECT().
					InvalidateSnapshot(gomock.Any()).
					Return(int64(0), fmt.Errorf("conexão perdida"))

				mockReporter.EXPECT().
					GetSalesReport(gomock.Any()).
					Return(&domain.SalesReportResponse{Summary: &domain.ReportSummary{}}, nil)
			},
			validate: func(t *testing.T, service *ReportSnapshotSyncService) {
				assert.False(t, service.syncRunning)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReporter := reportingmocks.NewMockReporter(ctrl)
			mockRepo := mocks.NewMockReportSnapshotRepository(ctrl)

			tt.setup(mockReporter, mockRepo)

			service := &ReportSnapshotSyncService{
				config:       tt.config,
				reporter:     mockReporter,
				snapshotRepo: mockRepo,
			}

			service.syncReportSnapshots()

			tt.validate(t, service)
		})
	}
}

func TestReportSnapshotSyncService_GetStatus(t *testing.T) {
	service := &ReportSnapshotSyncService{
		config: ReportSnapshotSyncConfig{
			CronSchedule:  "0 3 * * *",
			LookbackDays:  1,
			RetentionDays: 90,
			SyncEnabled:   true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 1, status["sync_lookback_days"])
	assert.Equal(t, 90, status["retention_days"])
	assert.Equal(t, false, status["sync_running"])
}

// Package scheduler contém os serviços de agendamento para pré-cálculo de
// relatórios
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Acedi-a/spa-report-api/infrastructure/repository"
	"github.com/Acedi-a/spa-report-api/internal/config"
	"github.com/Acedi-a/spa-report-api/internal/domain"
	"github.com/Acedi-a/spa-report-api/internal/usecases/reporting"
)

// ReportSnapshotSyncConfig representa a configuração do agendador de
// snapshots de relatório
type ReportSnapshotSyncConfig struct {
	CronSchedule  string
	LookbackDays  int
	RetentionDays int
	SyncEnabled   bool
}

// ReportSnapshotSyncService pré-calcula o relatório de cada dia já fechado e
// aplica a retenção do cache
type ReportSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSnapshotSyncConfig
	appConfig           *config.Config
	reporter            reporting.Reporter
	snapshotRepo        repository.ReportSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportSnapshotSyncService cria uma nova instância do serviço de
// sincronização de snapshots
func NewReportSnapshotSyncService(
	reporter reporting.Reporter,
	snapshotRepo repository.ReportSnapshotRepository,
	appConfig *config.Config,
) *ReportSnapshotSyncService {
	syncConfig := ReportSnapshotSyncConfig{
		CronSchedule:  appConfig.ReportSnapshotSync.CronSchedule,
		LookbackDays:  appConfig.ReportSnapshotSync.LookbackDays,
		RetentionDays: appConfig.ReportCache.RetentionDays,
		SyncEnabled:   appConfig.ReportSnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"lookback_days":  syncConfig.LookbackDays,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de relatório carregada")

	return &ReportSnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *ReportSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReportSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de relatório: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a sincronização fora do horário agendado
func (s *ReportSnapshotSyncService) TriggerManualSync() {
	go s.syncReportSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"retention_days":         s.config.RetentionDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

// syncReportSnapshots pré-calcula o relatório de cada dia do lookback e
// remove snapshots além da retenção
func (s *ReportSnapshotSyncService) syncReportSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando sincronização de snapshots de relatório")

	lookback := s.config.LookbackDays
	if lookback <= 0 {
		lookback = 1
	}

	synced := 0

	// Cada dia fechado vira um snapshot independente, do mais recente para o
	// mais antigo
	for offset := 1; offset <= lookback; offset++ {
		day := time.Now().AddDate(0, 0, -offset)
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

		filters := &domain.ReportFilters{
			StartDate: &day,
			EndDate:   &day,
		}

		// Invalidar antes de recalcular garante que o snapshot reflita o
		// estado atual do backend, não o cache anterior
		if _, err := s.reporter.InvalidateSnapshot(filters); err != nil {
			logrus.WithError(err).WithField("date", day.Format(time.DateOnly)).
				Warn("Erro ao invalidar snapshot antes do recálculo")
		}

		if _, err := s.reporter.GetSalesReport(filters); err != nil {
			logrus.WithError(err).WithField("date", day.Format(time.DateOnly)).
				Error("Erro ao pré-calcular relatório do dia")
			continue
		}

		synced++
	}

	// Aplicar a retenção do cache
	if s.config.RetentionDays > 0 && s.snapshotRepo != nil {
		deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Erro ao aplicar retenção de snapshots")
		} else if deleted > 0 {
			logrus.WithField("deleted", deleted).Info("Snapshots antigos removidos pela retenção")
		}
	}

	logrus.WithFields(logrus.Fields{
		"synced_days": synced,
		"duration":    time.Since(startTime).String(),
	}).Info("Sincronização de snapshots de relatório concluída")
}

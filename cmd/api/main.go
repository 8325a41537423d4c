package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Acedi-a/spa-report-api/infrastructure/database/postgres"
	"github.com/Acedi-a/spa-report-api/infrastructure/integrator/salonapi"
	"github.com/Acedi-a/spa-report-api/infrastructure/integrator/salonapi/salonclient"
	"github.com/Acedi-a/spa-report-api/infrastructure/repository"
	"github.com/Acedi-a/spa-report-api/internal/api"
	"github.com/Acedi-a/spa-report-api/internal/config"
	"github.com/Acedi-a/spa-report-api/internal/scheduler"
	"github.com/Acedi-a/spa-report-api/internal/usecases/history"
	"github.com/Acedi-a/spa-report-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewReportSnapshotRepository(pgConn)

	salonClient := salonclient.NewClient(cfg)
	salonIntegrator := salonapi.New(cfg, salonClient)

	// Inicializa o serviço de relatórios com suporte a cache
	cachedReportingService := reporting.NewService(cfg, salonIntegrator).(*reporting.Service)
	if cfg.ReportCache.Enabled {
		cachedReportingService = cachedReportingService.WithCache(snapshotRepo)
	} else {
		logrus.Info("Cache de snapshots de relatório desabilitado por configuração")
	}

	historyService := history.NewService(cfg, salonIntegrator)

	// Inicializa o agendador de pré-cálculo de snapshots
	reportSnapshotSyncService := scheduler.NewReportSnapshotSyncService(
		cachedReportingService,
		snapshotRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := reportSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de relatório")
	} else {
		logrus.Info("Agendador de snapshots de relatório iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		cachedReportingService,
		historyService,
		reportSnapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	SalonAPI           SalonAPI           `mapstructure:",squash"`
	ReportCache        ReportCache        `mapstructure:",squash"`
	ReportSnapshotSync ReportSnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// SalonAPI é o backend transacional do salão, dono de clientes, vendas,
// produtos e serviços. Este serviço só lê dele.
type SalonAPI struct {
	URL            string `mapstructure:"salon_api_url"`
	AccessToken    string `mapstructure:"salon_api_access_token"`
	TimeoutSeconds int    `mapstructure:"salon_api_timeout_seconds"`
}

// ReportCache controla o cache read-through de relatórios no Postgres
type ReportCache struct {
	Enabled       bool `mapstructure:"report_cache_enabled"`
	RetentionDays int  `mapstructure:"report_cache_retention_days"`
}

// ReportSnapshotSync controla o agendador que pré-calcula o relatório do dia
// anterior
type ReportSnapshotSync struct {
	CronSchedule string `mapstructure:"report_snapshot_sync_cron"`
	LookbackDays int    `mapstructure:"report_snapshot_sync_lookback_days"`
	Enabled      bool   `mapstructure:"report_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/spa_reports")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SALON_API_URL", "http://localhost:5080/api")
	viper.SetDefault("SALON_API_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("SALON_API_TIMEOUT_SECONDS", 30)

	viper.SetDefault("REPORT_CACHE_ENABLED", true)
	viper.SetDefault("REPORT_CACHE_RETENTION_DAYS", 90)

	// Defaults para o agendador de snapshots de relatório
	viper.SetDefault("REPORT_SNAPSHOT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("REPORT_SNAPSHOT_SYNC_LOOKBACK_DAYS", 1)  // Apenas o dia anterior
	viper.SetDefault("REPORT_SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Forecast     Forecast     `mapstructure:",squash"`
	ForecastSync ForecastSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN                    string `mapstructure:"-"`
	Driver                 string `mapstructure:"database_driver"`
	Password               string `mapstructure:"database_password"`
	URL                    string `mapstructure:"database_url"`
	User                   string `mapstructure:"database_user"`
	MaxOpenConns           int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns           int    `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"database_conn_max_lifetime_minutes"`
}

// Forecast controla a política de horizonte aplicada pela camada HTTP.
// O core aceita qualquer horizonte positivo; o limite superior é política do caller.
type Forecast struct {
	DefaultHorizonDays int `mapstructure:"forecast_default_horizon_days"`
	MaxHorizonDays     int `mapstructure:"forecast_max_horizon_days"`
}

// ForecastSync controla o agendador noturno de recálculo de previsões
type ForecastSync struct {
	CronSchedule      string `mapstructure:"forecast_sync_cron"`
	HorizonDays       int    `mapstructure:"forecast_sync_horizon_days"`
	MaxConcurrentJobs int    `mapstructure:"forecast_sync_max_concurrent_jobs"`
	RetentionDays     int    `mapstructure:"forecast_sync_retention_days"`
	Enabled           bool   `mapstructure:"forecast_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/inventory")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_MINUTES", 30)

	viper.SetDefault("FORECAST_DEFAULT_HORIZON_DAYS", 7)
	viper.SetDefault("FORECAST_MAX_HORIZON_DAYS", 90)

	// Defaults para o agendador de previsões
	viper.SetDefault("FORECAST_SYNC_CRON", "0 2 * * *")       // Todos os dias às 2h da manhã
	viper.SetDefault("FORECAST_SYNC_HORIZON_DAYS", 7)         // Horizonte padrão dos recálculos
	viper.SetDefault("FORECAST_SYNC_MAX_CONCURRENT_JOBS", 3)  // 3 produtos em paralelo
	viper.SetDefault("FORECAST_SYNC_RETENTION_DAYS", 30)      // Descarta previsões paradas há 30 dias
	viper.SetDefault("FORECAST_SYNC_ENABLED", false)          // Habilitar recálculo noturno

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

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

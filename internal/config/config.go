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
	Analytics    Analytics    `mapstructure:",squash"`
	Segmentation Segmentation `mapstructure:",squash"`
	DailySummary DailySummary `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Analytics struct {
	// RecordCap limita quantos registros o loader busca por chamada.
	RecordCap          int `mapstructure:"analytics_record_cap"`
	DefaultTopProducts int `mapstructure:"analytics_default_top_products"`
	DefaultListLimit   int `mapstructure:"analytics_default_list_limit"`
}

type Segmentation struct {
	MinClusters     int   `mapstructure:"segmentation_min_clusters"`
	MaxClusters     int   `mapstructure:"segmentation_max_clusters"`
	Initializations int   `mapstructure:"segmentation_initializations"`
	MaxIterations   int   `mapstructure:"segmentation_max_iterations"`
	Seed            int64 `mapstructure:"segmentation_seed"`
}

type DailySummary struct {
	CronSchedule string `mapstructure:"daily_summary_cron"`
	Enabled      bool   `mapstructure:"daily_summary_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/retail")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ANALYTICS_RECORD_CAP", 100000)       // Teto de registros por chamada
	viper.SetDefault("ANALYTICS_DEFAULT_TOP_PRODUCTS", 10) // Limite padrão do ranking de produtos
	viper.SetDefault("ANALYTICS_DEFAULT_LIST_LIMIT", 1000) // Limite padrão da listagem de transações

	viper.SetDefault("SEGMENTATION_MIN_CLUSTERS", 2)
	viper.SetDefault("SEGMENTATION_MAX_CLUSTERS", 8)
	viper.SetDefault("SEGMENTATION_INITIALIZATIONS", 10) // Reexecuções do k-means por chamada
	viper.SetDefault("SEGMENTATION_MAX_ITERATIONS", 300) // Iterações máximas por reexecução
	viper.SetDefault("SEGMENTATION_SEED", 42)            // Semente fixa para reprodutibilidade

	viper.SetDefault("DAILY_SUMMARY_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DAILY_SUMMARY_ENABLED", false)

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

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

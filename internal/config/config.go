package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/creative-health-api/internal/usecases/analyzing"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Analyzer           Analyzer           `mapstructure:",squash"`
	CreativeHealthSync CreativeHealthSync `mapstructure:",squash"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Analyzer permite ajustar os limiares da análise sem recompilar
type Analyzer struct {
	DefaultWindowDays        int     `mapstructure:"analyzer_default_window_days"`
	FatigueScoreFatigued     float64 `mapstructure:"analyzer_fatigue_score_fatigued"`
	FatigueScoreWarning      float64 `mapstructure:"analyzer_fatigue_score_warning"`
	SaturationScoreThreshold float64 `mapstructure:"analyzer_saturation_score_threshold"`
}

type CreativeHealthSync struct {
	CronSchedule string `mapstructure:"creative_health_sync_cron"`
	LookbackDays int    `mapstructure:"creative_health_sync_lookback_days"`
	Enabled      bool   `mapstructure:"creative_health_sync_enabled"`
}

// Policy monta a política de análise a partir dos defaults e das
// sobrescritas configuradas via ambiente
func (a Analyzer) Policy() analyzing.Policy {
	policy := analyzing.DefaultPolicy()

	if a.DefaultWindowDays > 0 {
		policy.DefaultWindowDays = a.DefaultWindowDays
	}
	if a.FatigueScoreFatigued > 0 {
		policy.FatigueScoreThreshold = a.FatigueScoreFatigued
	}
	if a.FatigueScoreWarning > 0 {
		policy.WarningScoreThreshold = a.FatigueScoreWarning
	}
	if a.SaturationScoreThreshold > 0 {
		policy.SaturationScoreThreshold = a.SaturationScoreThreshold
	}

	return policy
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creative_health")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do analisador (zero mantém o valor embutido)
	viper.SetDefault("ANALYZER_DEFAULT_WINDOW_DAYS", 30)
	viper.SetDefault("ANALYZER_FATIGUE_SCORE_FATIGUED", 0)
	viper.SetDefault("ANALYZER_FATIGUE_SCORE_WARNING", 0)
	viper.SetDefault("ANALYZER_SATURATION_SCORE_THRESHOLD", 0)

	// Defaults para a varredura noturna de saúde criativa
	viper.SetDefault("CREATIVE_HEALTH_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("CREATIVE_HEALTH_SYNC_LOOKBACK_DAYS", 30)
	viper.SetDefault("CREATIVE_HEALTH_SYNC_ENABLED", false)

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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

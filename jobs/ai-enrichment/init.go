package main

import (
	"log/slog"
	"os"

	"github.com/Lokeshwar-goud/Psyvana/pkg/ai/planner"
	"github.com/Lokeshwar-goud/Psyvana/pkg/ai/sentiment"
	"github.com/Lokeshwar-goud/Psyvana/pkg/db"
	"github.com/Lokeshwar-goud/Psyvana/pkg/utils"
	"gopkg.in/yaml.v2"

	wellnessDB "github.com/Lokeshwar-goud/Psyvana/pkg/db/wellness"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_WELLNESS_DB_USERNAME = "WELLNESS_DB_USERNAME"
	ENV_WELLNESS_DB_PASSWORD = "WELLNESS_DB_PASSWORD"

	ENV_GEMINI_API_KEY           = "GEMINI_API_KEY"
	ENV_NATURAL_LANGUAGE_API_KEY = "NATURAL_LANGUAGE_API_KEY"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		WellnessDB db.DBConfigYaml `json:"wellness_db" yaml:"wellness_db"`
	} `json:"db_configs" yaml:"db_configs"`

	RunTasks struct {
		WellnessPlans     bool `json:"wellness_plans" yaml:"wellness_plans"`
		SentimentAnalysis bool `json:"sentiment_analysis" yaml:"sentiment_analysis"`
	} `json:"run_tasks" yaml:"run_tasks"`

	GeminiConfig planner.Config `json:"gemini_config" yaml:"gemini_config"`

	NaturalLanguageConfig sentiment.Config `json:"natural_language_config" yaml:"natural_language_config"`
}

var conf config

var wellnessDBService *wellnessDB.WellnessDBService

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
	)

	// Override secrets from environment variables
	secretsOverride()

	// init db
	initDBs()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_WELLNESS_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.WellnessDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_WELLNESS_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.WellnessDB.Password = dbPassword
	}

	if apiKey := os.Getenv(ENV_GEMINI_API_KEY); apiKey != "" {
		conf.GeminiConfig.APIKey = apiKey
	}

	if apiKey := os.Getenv(ENV_NATURAL_LANGUAGE_API_KEY); apiKey != "" {
		conf.NaturalLanguageConfig.APIKey = apiKey
	}
}

func initDBs() {
	var err error
	wellnessDBService, err = wellnessDB.NewWellnessDBService(db.DBConfigFromYamlObj(conf.DBConfigs.WellnessDB))
	if err != nil {
		slog.Error("Error connecting to Wellness DB", slog.String("error", err.Error()))
		return
	}
}

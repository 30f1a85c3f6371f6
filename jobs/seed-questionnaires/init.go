package main

import (
	"log/slog"
	"os"

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
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		WellnessDB db.DBConfigYaml `json:"wellness_db" yaml:"wellness_db"`
	} `json:"db_configs" yaml:"db_configs"`
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
}

func initDBs() {
	var err error
	wellnessDBService, err = wellnessDB.NewWellnessDBService(db.DBConfigFromYamlObj(conf.DBConfigs.WellnessDB))
	if err != nil {
		slog.Error("Error connecting to Wellness DB", slog.String("error", err.Error()))
		return
	}
}

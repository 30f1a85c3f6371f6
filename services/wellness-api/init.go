package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/Lokeshwar-goud/Psyvana/pkg/assessment"
	"github.com/Lokeshwar-goud/Psyvana/pkg/db"
	usermanagement "github.com/Lokeshwar-goud/Psyvana/pkg/user-management"
	"github.com/Lokeshwar-goud/Psyvana/pkg/user-management/pwhash"
	"github.com/Lokeshwar-goud/Psyvana/pkg/utils"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	userDB "github.com/Lokeshwar-goud/Psyvana/pkg/db/user"
	wellnessDB "github.com/Lokeshwar-goud/Psyvana/pkg/db/wellness"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_WELLNESS_DB_USERNAME = "WELLNESS_DB_USERNAME"
	ENV_WELLNESS_DB_PASSWORD = "WELLNESS_DB_PASSWORD"
	ENV_USER_DB_USERNAME     = "USER_DB_USERNAME"
	ENV_USER_DB_PASSWORD     = "USER_DB_PASSWORD"

	ENV_APP_USER_JWT_SIGN_KEY = "APP_USER_JWT_SIGN_KEY"
)

type WellnessApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	// user management configs
	UserManagementConfig struct {
		PWHashing struct {
			Argon2Memory      uint32 `json:"argon2_memory" yaml:"argon2_memory"`
			Argon2Iterations  uint32 `json:"argon2_iterations" yaml:"argon2_iterations"`
			Argon2Parallelism uint8  `json:"argon2_parallelism" yaml:"argon2_parallelism"`
		} `json:"pw_hashing" yaml:"pw_hashing"`
		AppUserJWTConfig struct {
			SignKey   string        `json:"sign_key" yaml:"sign_key"`
			ExpiresIn time.Duration `json:"expires_in" yaml:"expires_in"`
		} `json:"app_user_jwt_config" yaml:"app_user_jwt_config"`
		MaxNewUsersPer5Minutes int `json:"max_new_users_per_5_minutes" yaml:"max_new_users_per_5_minutes"`
	} `json:"user_management_config" yaml:"user_management_config"`

	// DB configs
	DBConfigs struct {
		WellnessDB db.DBConfigYaml `json:"wellness_db" yaml:"wellness_db"`
		UserDB     db.DBConfigYaml `json:"user_db" yaml:"user_db"`
	} `json:"db_configs" yaml:"db_configs"`
}

var (
	wellnessDBService *wellnessDB.WellnessDBService
	userDBService     *userDB.UserDBService
)

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

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// init argon2
	pwhash.InitArgonParams(
		conf.UserManagementConfig.PWHashing.Argon2Memory,
		conf.UserManagementConfig.PWHashing.Argon2Iterations,
		conf.UserManagementConfig.PWHashing.Argon2Parallelism,
	)

	usermanagement.Init(userDBService)
	assessment.Init(wellnessDBService)
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_WELLNESS_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.WellnessDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_WELLNESS_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.WellnessDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.UserDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.UserDB.Password = dbPassword
	}

	if jwtSignKey := os.Getenv(ENV_APP_USER_JWT_SIGN_KEY); jwtSignKey != "" {
		conf.UserManagementConfig.AppUserJWTConfig.SignKey = jwtSignKey
	}
}

func initDBs() {
	var err error
	wellnessDBService, err = wellnessDB.NewWellnessDBService(db.DBConfigFromYamlObj(conf.DBConfigs.WellnessDB))
	if err != nil {
		slog.Error("Error connecting to Wellness DB", slog.String("error", err.Error()))
		return
	}

	userDBService, err = userDB.NewUserDBService(db.DBConfigFromYamlObj(conf.DBConfigs.UserDB))
	if err != nil {
		slog.Error("Error connecting to User DB", slog.String("error", err.Error()))
		return
	}
}

package db

import (
	"fmt"
)

// DBConfigFromYamlObj builds the connection config from the yaml config
// object. Username and password are expected to be filled in already
// (either from the file or from the env var overrides).
func DBConfigFromYamlObj(configs DBConfigYaml) DBConfig {
	URI := fmt.Sprintf(`mongodb%s://%s:%s@%s`, configs.ConnectionPrefix, configs.Username, configs.Password, configs.ConnectionStr)

	return DBConfig{
		URI:             URI,
		Timeout:         configs.Timeout,
		IdleConnTimeout: configs.IdleConnTimeout,
		MaxPoolSize:     uint64(configs.MaxPoolSize),
		DBNamePrefix:    configs.DBNamePrefix,
	}
}

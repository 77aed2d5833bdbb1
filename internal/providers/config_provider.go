package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"shiftlog/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	// Environment overrides for the deployment-specific knobs.
	viper.BindEnv("webServer.host", "SHIFTLOG_HOST")
	viper.BindEnv("webServer.port", "SHIFTLOG_PORT")
	viper.BindEnv("webServer.trustProxy", "SHIFTLOG_TRUST_PROXY")
	viper.BindEnv("session.secret", "SHIFTLOG_SECRET_KEY")
	viper.BindEnv("persistence.filePath", "SHIFTLOG_DATA_FILE")
	viper.BindEnv("logger.level", "SHIFTLOG_LOG_LEVEL")
	viper.BindEnv("cache.enabled", "SHIFTLOG_CACHE_ENABLED")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ShiftLog"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

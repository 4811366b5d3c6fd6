package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "balber"
	envPrefix      = "BALBER"

	cfgKeyFrom        = "from"
	cfgKeyTo          = "to"
	cfgKeySkipUnknown = "skip_unknown"

	defaultFormat = "json"
)

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	cfgKeyFrom:        "from",
	cfgKeyTo:          "to",
	cfgKeySkipUnknown: "skip-unknown",
}

// loadConfig reads the config file, if any, and environment overrides
// (BALBER_FROM, BALBER_TO, BALBER_SKIP_UNKNOWN). An explicit path must exist;
// the default ./balber.yaml is optional.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFrom, defaultFormat)
	v.SetDefault(cfgKeyTo, defaultFormat)
	v.SetDefault(cfgKeySkipUnknown, false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

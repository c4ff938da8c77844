package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tcfw/didweb/internal/utils/logging"
)

const (
	Cfg_verbose   = "verbose"
	Cfg_logFormat = "log.format"
)

var (
	defaults = map[string]interface{}{
		Cfg_verbose:   false,
		Cfg_logFormat: "text",
	}
)

func init() {
	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	for k, d := range didWebDefaults {
		v.SetDefault(k, d)
	}
}

// GetConfig reads the config file and environment into the global viper
// instance and captures the result.
func GetConfig() (*Config, error) {
	v := viper.GetViper()
	v.SetConfigType("yaml")
	v.SetConfigName("didweb")
	v.AddConfigPath("/etc/didweb/")
	v.AddConfigPath("$HOME/.didweb")
	v.AddConfigPath(".")

	err := v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error
			logging.Entry().Debug("no config found")
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	return Load(v)
}

// Load captures the configuration held by v. Later changes to v are not
// observed.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("DIDWEB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	if err := v.BindEnv(Cfg_didweb_forceHTTPForHostnames, forceHTTPEnv); err != nil {
		return nil, errors.Wrap(err, "binding env")
	}

	c := &Config{
		verbose: v.GetBool(Cfg_verbose),
	}

	var err error
	c.didWeb, err = buildDIDWebConfig(v)
	if err != nil {
		return nil, errors.Wrap(err, "did:web config")
	}

	logging.SetFormat(v.GetString(Cfg_logFormat))
	if c.verbose {
		logging.SetLevel(logrus.DebugLevel)
		logging.Entry().WithField("level", "debug").Debug("setting log level")
	}

	return c, nil
}

type Config struct {
	verbose bool
	didWeb  *DIDWeb
}

func (c *Config) Verbose() bool {
	return c.verbose
}

func (c *Config) DIDWeb() *DIDWeb {
	return c.didWeb
}

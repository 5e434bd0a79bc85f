// Package config loads the shared JSON configuration file used by all entrypoints.
package config

import (
	"encoding/json"
	"os"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

/*
Config is the top-level configuration shared by every entrypoint.

Per-package sections (like echo-middleware) are kept as raw JSON so this
package does not depend on the packages it configures; each entrypoint
unmarshals the section it needs and hands it to that package.
*/
type Config struct {
	AdminEmail     string          `json:"admin_email,omitempty"`
	ReportOutDir   string          `json:"report_out_dir,omitempty"`
	EchoMiddleware json.RawMessage `json:"echo_middleware,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		AdminEmail:   "",
		ReportOutDir: "./out",
	}
}

// create config with default values before config gets initialized
var Cfg Config = DefaultValueConfig() // this one we use to access config values from anywhere

/*
InitializeConfig reads the JSON config file at configPath into Cfg.

A missing or unreadable file is not fatal: the defaults stay in place and a
warning is logged, so every entrypoint can run without a config file.
*/
func InitializeConfig(configPath string) {
	fileBytes, readErr := os.ReadFile(configPath)
	if readErr != nil {
		tl.Log(
			tl.Warning, palette.YellowDim, "Unable to read config file '%s', keeping %s",
			configPath, "default configuration values",
		)
		return
	}

	parsed := DefaultValueConfig()
	unmarshalErr := json.Unmarshal(fileBytes, &parsed)
	if unmarshalErr != nil {
		tl.Log(
			tl.Warning, palette.PurpleBright, "Unable to parse config file '%s': '%s'. Keeping %s",
			configPath, unmarshalErr, "default configuration values",
		)
		return
	}

	Cfg = parsed

	tl.Log(tl.Info, palette.Green, "%s config file '%s'", "Loaded", configPath)
	tl.LogJSON(tl.Verbose, palette.CyanDim, "configuration", Cfg)
}

/*
CheckIfEnvVarsPresent logs a warning for every environment variable in names
that is unset or blank.

It never exits: some entrypoints list the variables of several alternative
providers at once and only one provider ends up being used.
*/
func CheckIfEnvVarsPresent(names ...string) {
	for _, name := range names {
		if strings.TrimSpace(os.Getenv(name)) == "" {
			tl.Log(tl.Warning, palette.YellowBold, "%s environment variable is %s", name, "not set")
		}
	}
}

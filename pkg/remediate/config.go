// pkg/remediate/config.go

package remediate

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/smartfinances/botops/pkg/ops_io"
	"github.com/smartfinances/botops/pkg/shared"
)

// LoadConfig resolves the effective config: built-in defaults, then
// /etc/botops/botops.yaml (or ~/.botops, or an explicit file), then
// BOTOPS_* environment variables. Flags are layered on by the caller.
func LoadConfig(rc *ops_io.RuntimeContext, configFile string) (Config, error) {
	logger := otelzap.Ctx(rc.Ctx)

	v := viper.New()
	v.SetConfigName("botops")
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(shared.BotopsConfigDir)
		v.AddConfigPath("$HOME/.botops")
	}

	v.SetEnvPrefix("BOTOPS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("deploy_dir", defaults.DeployDir)
	v.SetDefault("venv_bin_dir", defaults.VenvBinDir)
	v.SetDefault("database_path", defaults.DatabasePath)
	v.SetDefault("env_file_path", defaults.EnvFilePath)
	v.SetDefault("credentials_path", defaults.CredentialsPath)
	v.SetDefault("log_file_path", defaults.LogFilePath)
	v.SetDefault("unit_name", defaults.UnitName)
	v.SetDefault("remote_host", defaults.RemoteHost)
	v.SetDefault("unit_install_path", defaults.UnitInstallPath)
	v.SetDefault("process_pattern", defaults.ProcessPattern)
	v.SetDefault("service_user", defaults.ServiceUser)
	v.SetDefault("service_group", defaults.ServiceGroup)
	v.SetDefault("min_database_size", defaults.MinDatabaseSize)
	v.SetDefault("startup_timeout", defaults.StartupTimeout)
	v.SetDefault("kill_wait", defaults.KillWait)
	v.SetDefault("log_tail_lines", defaults.LogTailLines)

	switch err := v.ReadInConfig(); {
	case err == nil:
		logger.Info("📖 Loaded config", zap.String("file", v.ConfigFileUsed()))
	case configFile != "":
		// An explicitly named config file must be readable.
		return Config{}, cerr.Wrapf(err, "read config %s", configFile)
	default:
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, cerr.Wrap(err, "read botops.yaml")
		}
		logger.Debug("No botops.yaml found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, cerr.Wrap(err, "unmarshal config")
	}
	return cfg, nil
}

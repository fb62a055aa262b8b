package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Rules    RulesConfig  `mapstructure:"rules"`
	Data     DataConfig   `mapstructure:"data"`
	Batch    BatchConfig  `mapstructure:"batch"`
	Server   ServerConfig `mapstructure:"server"`
	LogLevel string       `mapstructure:"log_level"`
}

type RulesConfig struct {
	ReversePath string `mapstructure:"reverse_path"`
	TonePath    string `mapstructure:"tone_path"`
}

type DataConfig struct {
	CertDir   string `mapstructure:"cert_dir"`
	GipDir    string `mapstructure:"gip_dir"`
	ToneJSOut string `mapstructure:"tone_js_out"`
}

type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// flagKeys maps each registered flag to its config key.
var flagKeys = map[string]string{
	"rules-reverse-path":      "rules.reverse_path",
	"rules-tone-path":         "rules.tone_path",
	"data-cert-dir":           "data.cert_dir",
	"data-gip-dir":            "data.gip_dir",
	"data-tone-js-out":        "data.tone_js_out",
	"workers":                 "batch.workers",
	"server-listen-addr":      "server.listen_addr",
	"server-max-text-bytes":   "server.max_text_bytes",
	"server-shutdown-timeout": "server.shutdown_timeout",
	"log-level":               "log_level",
}

func DefaultConfig() Config {
	return Config{
		Rules: RulesConfig{
			ReversePath: "reverse_tone_mapping.json",
			TonePath:    "tone_mapping.json",
		},
		Data: DataConfig{
			CertDir:   "data/cert",
			GipDir:    "data/gip",
			ToneJSOut: "tone_mapping_data.js",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			MaxTextBytes:    4096,
			ShutdownTimeout: 30,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("rules-reverse-path", defaults.Rules.ReversePath, "Path to the diacritic->numeric rule file (JSON, YAML or TOML)")
	fs.String("rules-tone-path", defaults.Rules.TonePath, "Path to the numeric->diacritic rule file (JSON, YAML or TOML)")
	fs.String("data-cert-dir", defaults.Data.CertDir, "Directory of certification CSV files")
	fs.String("data-gip-dir", defaults.Data.GipDir, "Directory of dictionary (gip) CSV files")
	fs.String("data-tone-js-out", defaults.Data.ToneJSOut, "Output path of the front-end tone rule script")
	fs.Int("workers", defaults.Batch.Workers, "Files converted in parallel during batch runs")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum text length accepted by /convert")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown timeout in seconds")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("HAKKATONE")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("hakkatone")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// bindFlags binds each known flag to its nested key. Binding by key rather
// than aliasing keeps values from a config file visible to Unmarshal.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("rules.reverse_path", c.Rules.ReversePath)
	v.SetDefault("rules.tone_path", c.Rules.TonePath)
	v.SetDefault("data.cert_dir", c.Data.CertDir)
	v.SetDefault("data.gip_dir", c.Data.GipDir)
	v.SetDefault("data.tone_js_out", c.Data.ToneJSOut)
	v.SetDefault("batch.workers", c.Batch.Workers)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("log_level", c.LogLevel)
}

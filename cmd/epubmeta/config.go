package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/yuanying/epubmeta"
)

const (
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 10 // megabytes
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28 // days
)

// cliOptions is the merged view of the config file and the command line.
// Flags win over file values, file values over defaults.
type cliOptions struct {
	LogLevel          string `mapstructure:"log_level"`
	LogFile           string `mapstructure:"log_file"`
	LogFileMaxSize    int    `mapstructure:"log_file_max_size"`
	LogFileMaxBackups int    `mapstructure:"log_file_max_backups"`
	LogFileMaxAge     int    `mapstructure:"log_file_max_age"`

	StrictNCX          bool `mapstructure:"strict_ncx"`
	NormalizeNCXTitles bool `mapstructure:"normalize_ncx_titles"`
	Indent             bool `mapstructure:"indent"`

	level zapcore.Level
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"log_level":            "log-level",
	"log_file":             "log-file",
	"strict_ncx":           "strict-ncx",
	"normalize_ncx_titles": "normalize-ncx-titles",
	"indent":               "indent",
}

func readCLIOptions(cmd *cobra.Command) (*cliOptions, error) {
	v := viper.New()
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_file_max_size", defaultLogFileMaxSize)
	v.SetDefault("log_file_max_backups", defaultLogFileMaxBackups)
	v.SetDefault("log_file_max_age", defaultLogFileMaxAge)

	flags := cmd.Flags()
	for key, name := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, errors.Wrapf(err, "bind flag --%s", name)
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", path)
		}
	}

	opts := &cliOptions{}
	if err := v.Unmarshal(opts); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	level, err := zapcore.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", opts.LogLevel)
	}
	opts.level = level

	if opts.LogFileMaxSize < 0 || opts.LogFileMaxBackups < 0 || opts.LogFileMaxAge < 0 {
		return nil, errors.New("log file rotation limits must not be negative")
	}
	return opts, nil
}

// bookOptions translates parser settings into library options.
func (o *cliOptions) bookOptions() []epubmeta.Option {
	var opts []epubmeta.Option
	if o.StrictNCX {
		opts = append(opts, epubmeta.WithStrictNCXLookup())
	}
	if o.NormalizeNCXTitles {
		opts = append(opts, epubmeta.WithNormalizedNCXTitles())
	}
	return opts
}

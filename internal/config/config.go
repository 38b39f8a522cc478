// Package config loads service settings from the environment and .env files.
package config

import (
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/chertila/chertila-go/pkg/chertila"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variable names.
const (
	EnvStage          = "STAGE"
	EnvLogLevel       = "LOG_LEVEL"
	EnvAddr           = "CHERTILA_ADDR"
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvRenderWorkers  = "RENDER_WORKERS"
	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvPlotWidth      = "PLOT_WIDTH"
	EnvPlotHeight     = "PLOT_HEIGHT"
	EnvPlotFormat     = "PLOT_FORMAT"
)

// Config holds the service settings.
type Config struct {
	Stage          string
	LogLevel       string
	Addr           string
	TelegramToken  string
	RenderWorkers  int
	RequestTimeout time.Duration
	Render         chertila.Options
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Stage:          "dev",
		LogLevel:       "info",
		Addr:           ":8080",
		RenderWorkers:  runtime.NumCPU(),
		RequestTimeout: 30 * time.Second,
		Render:         chertila.DefaultOptions(),
	}
}

// Load reads the given .env files (".env" when none are named), ignoring
// missing ones, and then builds the config from the process environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the config from lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvStage); ok && v != "" {
		cfg.Stage = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvTelegramToken); ok {
		cfg.TelegramToken = v
	}

	var err error
	if cfg.RenderWorkers, err = intVar(lookup, EnvRenderWorkers, cfg.RenderWorkers); err != nil {
		return Config{}, err
	}
	if cfg.Render.Width, err = intVar(lookup, EnvPlotWidth, cfg.Render.Width); err != nil {
		return Config{}, err
	}
	if cfg.Render.Height, err = intVar(lookup, EnvPlotHeight, cfg.Render.Height); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvPlotFormat); ok && v != "" {
		if cfg.Render.Format, err = chertila.ParseFormat(v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		if cfg.RequestTimeout, err = time.ParseDuration(v); err != nil {
			return Config{}, &VarError{Name: EnvRequestTimeout, Value: v, Err: err}
		}
	}

	if cfg.RenderWorkers < 1 {
		return Config{}, &VarError{Name: EnvRenderWorkers, Value: strconv.Itoa(cfg.RenderWorkers), Err: errors.New("must be positive")}
	}
	if err := cfg.Render.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func intVar(lookup func(string) (string, bool), name string, def int) (int, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &VarError{Name: name, Value: v, Err: err}
	}
	return n, nil
}

// VarError reports an environment variable that could not be used.
type VarError struct {
	Name  string
	Value string
	Err   error
}

func (e *VarError) Error() string {
	return "invalid " + e.Name + "=" + strconv.Quote(e.Value) + ": " + e.Err.Error()
}

func (e *VarError) Unwrap() error {
	return e.Err
}

/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/code"
	"dirpx.dev/kerrors/mapper"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"google.golang.org/grpc/codes"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "KERRORS"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration tree.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Mapping MappingConfig `mapstructure:"mapping"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MappingConfig holds transport mapping rules layered over the library
// defaults.
type MappingConfig struct {
	Fallback FallbackConfig `mapstructure:"fallback"`
	Codes    []CodeRule     `mapstructure:"codes"`
	Ranges   []RangeRule    `mapstructure:"ranges"`
}

// FallbackConfig is used when no other rule matches. Zero values keep the
// library fallback.
type FallbackConfig struct {
	HTTP int    `mapstructure:"http"`
	GRPC string `mapstructure:"grpc"`
}

// CodeRule overrides the mapping of a single code. Code accepts a
// mnemonic, "code N" or a decimal.
type CodeRule struct {
	Code string `mapstructure:"code"`
	HTTP int    `mapstructure:"http"`
	GRPC string `mapstructure:"grpc"`
}

// RangeRule maps a closed range of raw codes.
type RangeRule struct {
	From uint32 `mapstructure:"from"`
	To   uint32 `mapstructure:"to"`
	HTTP int    `mapstructure:"http"`
	GRPC string `mapstructure:"grpc"`
}

// Load reads path (if non-empty) and applies KERRORS_* environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("mapping.fallback.http", 0)
	v.SetDefault("mapping.fallback.grpc", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}
	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set are left alone.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s failed: %w", path, err)
	}
	return nil
}

// MapperOptions converts the mapping section into mapper options. Status
// values are range-checked later by mapper.New.
func (c *Config) MapperOptions() ([]mapper.Option, error) {
	var opts []mapper.Option
	m := c.Mapping

	if m.Fallback.HTTP != 0 {
		opts = append(opts, mapper.WithHTTPFallback(m.Fallback.HTTP))
	}
	if m.Fallback.GRPC != "" {
		gc, err := parseGRPC(m.Fallback.GRPC)
		if err != nil {
			return nil, fmt.Errorf("mapping.fallback.grpc: %w", err)
		}
		opts = append(opts, mapper.WithGRPCFallback(int(gc)))
	}

	for i, r := range m.Codes {
		ec, err := code.Parse(r.Code)
		if err != nil {
			return nil, fmt.Errorf("%w: mapping.codes[%d]: %q: %w", ErrInvalidConfig, i, r.Code, err)
		}
		if r.HTTP != 0 {
			opts = append(opts, mapper.WithHTTPOverride(ec, r.HTTP))
		}
		if r.GRPC != "" {
			gc, err := parseGRPC(r.GRPC)
			if err != nil {
				return nil, fmt.Errorf("mapping.codes[%d].grpc: %w", i, err)
			}
			opts = append(opts, mapper.WithGRPCOverride(ec, int(gc)))
		}
	}

	for i, r := range m.Ranges {
		if r.HTTP != 0 {
			opts = append(opts, mapper.WithHTTPRange(r.From, r.To, r.HTTP))
		}
		if r.GRPC != "" {
			gc, err := parseGRPC(r.GRPC)
			if err != nil {
				return nil, fmt.Errorf("mapping.ranges[%d].grpc: %w", i, err)
			}
			opts = append(opts, mapper.WithGRPCRange(r.From, r.To, int(gc)))
		}
	}
	return opts, nil
}

// Mapper builds a mapper from the mapping section.
func (c *Config) Mapper() (apis.Mapper, error) {
	opts, err := c.MapperOptions()
	if err != nil {
		return nil, err
	}
	return mapper.New(opts...)
}

// Logger builds a logrus logger writing to out.
func (c LogConfig) Logger(out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	switch strings.ToLower(c.Format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: log.format: %q", ErrInvalidConfig, c.Format)
	}
	return l, nil
}

// parseGRPC accepts a status name in any case ("unavailable",
// "INVALID_ARGUMENT") or its decimal value.
func parseGRPC(s string) (codes.Code, error) {
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return codes.Code(n), nil
	}
	var gc codes.Code
	if err := gc.UnmarshalJSON([]byte(strconv.Quote(strings.ToUpper(s)))); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return gc, nil
}

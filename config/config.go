/*
Copyright 2019 Google Inc. All Rights Reserved.
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

// Package config loads the agent settings from layered sources, ascending:
// default.toml, {env}.toml (optional), then APP_-prefixed environment
// variables with "__" separating nested keys. The config directory comes
// from RUN_CONFIG_DIR (default "./config") and the profile from RUN_ENV
// (default "local").
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigDir = "./config"
	defaultEnv       = "local"
)

// HTTPServer configures the preview-serving surface.
type HTTPServer struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    uint16 `mapstructure:"port"`
}

// Coordinator configures the ingestion side.
type Coordinator struct {
	Enabled         bool   `mapstructure:"enabled"`
	Address         string `mapstructure:"address"`
	FetchBatchSize  uint32 `mapstructure:"fetch_batch_size"`
	NumberOfWorkers int    `mapstructure:"number_of_workers"`
}

// ObjectStore configures the S3-compatible backend. All credential fields
// are optional; absent credentials mean anonymous access.
type ObjectStore struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	SessionToken    string `mapstructure:"session_token"`
	BucketForMedia  string `mapstructure:"bucket_for_media"`
}

// AssetProcessor configures download and normalization bounds.
type AssetProcessor struct {
	ResizeTo         int    `mapstructure:"resize_to"`
	FileMaxSizeBytes uint64 `mapstructure:"file_max_size_bytes"`
}

// Metrics toggles the scrape endpoint.
type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

// Settings is the full agent configuration.
type Settings struct {
	Env            string         `mapstructure:"env"`
	HTTPServer     HTTPServer     `mapstructure:"http_server"`
	Coordinator    Coordinator    `mapstructure:"coordinator"`
	ObjectStore    ObjectStore    `mapstructure:"object_store"`
	AssetProcessor AssetProcessor `mapstructure:"asset_processor"`
	Metrics        Metrics        `mapstructure:"metrics"`
}

// settingsKeys is every key Unmarshal reads. Each one is bound to its env
// variable explicitly: AutomaticEnv alone only covers keys already present
// in a config file, which would silently drop env-only values (typically
// the credentials).
var settingsKeys = []string{
	"env",
	"http_server.enabled",
	"http_server.port",
	"coordinator.enabled",
	"coordinator.address",
	"coordinator.fetch_batch_size",
	"coordinator.number_of_workers",
	"object_store.region",
	"object_store.endpoint",
	"object_store.access_key_id",
	"object_store.secret_access_key",
	"object_store.session_token",
	"object_store.bucket_for_media",
	"asset_processor.resize_to",
	"asset_processor.file_max_size_bytes",
	"metrics.enabled",
}

// Load reads the layered settings for the profile selected by RUN_ENV.
func Load() (*Settings, error) {
	dir := trimRightSlash(envOrDefault("RUN_CONFIG_DIR", defaultConfigDir))
	env := envOrDefault("RUN_ENV", defaultEnv)

	v := viper.New()
	v.SetConfigType("toml")

	v.SetConfigFile(filepath.Join(dir, "default.toml"))
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s/default.toml: %v", dir, err)
	}

	// The profile overlay is optional; only real read errors are surfaced.
	v.SetConfigFile(filepath.Join(dir, env+".toml"))
	if err := v.MergeInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("merging %s/%s.toml: %v", dir, env, err)
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	for _, key := range settingsKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding env for %q: %v", key, err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %v", err)
	}
	s.Env = env
	return s, nil
}

// String renders the settings for startup logging with credentials masked.
func (s *Settings) String() string {
	return fmt.Sprintf("env=%s http_server={enabled:%t port:%d} "+
		"coordinator={enabled:%t address:%s fetch_batch_size:%d number_of_workers:%d} "+
		"object_store={region:%s endpoint:%s access_key_id:%s secret_access_key:%s session_token:%s bucket_for_media:%s} "+
		"asset_processor={resize_to:%d file_max_size_bytes:%d} metrics={enabled:%t}",
		s.Env, s.HTTPServer.Enabled, s.HTTPServer.Port,
		s.Coordinator.Enabled, s.Coordinator.Address, s.Coordinator.FetchBatchSize, s.Coordinator.NumberOfWorkers,
		s.ObjectStore.Region, s.ObjectStore.Endpoint,
		maskCreds(s.ObjectStore.AccessKeyID), maskCreds(s.ObjectStore.SecretAccessKey),
		maskCreds(s.ObjectStore.SessionToken), s.ObjectStore.BucketForMedia,
		s.AssetProcessor.ResizeTo, s.AssetProcessor.FileMaxSizeBytes, s.Metrics.Enabled)
}

// maskCreds keeps the first two characters and stars the rest, so startup
// logs identify which credential is in use without leaking it.
func maskCreds(s string) string {
	if len(s) <= 2 {
		return s
	}
	return s[:2] + strings.Repeat("*", len(s)-2)
}

func trimRightSlash(s string) string {
	return strings.TrimRight(s, "/")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

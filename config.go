package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Version is stamped into the default User-Agent sent upstream.
const Version = "1.0"

// DefaultUpstream is the Kaito yaps endpoint this proxy fronts.
const DefaultUpstream = "https://api.kaito.ai/api/v1/yaps"

// Config holds all configuration for the yaps proxy
type Config struct {
	Port            int    `json:"port"`
	Upstream        string `json:"upstream_url"`
	LogLevel        string `json:"log_level"`
	UserAgent       string `json:"user_agent"`
	RequestTimeout  int    `json:"request_timeout_seconds"`
	ShutdownTimeout int    `json:"shutdown_timeout_seconds"`
}

func defaultConfig() *Config {
	return &Config{
		Port:            8080,
		Upstream:        DefaultUpstream,
		LogLevel:        "info",
		UserAgent:       "yaps-proxy/" + Version,
		RequestTimeout:  30, // 30 seconds
		ShutdownTimeout: 30, // 30 seconds
	}
}

// LoadConfig loads configuration from environment variables, config file, and command-line flags
func LoadConfig() (*Config, error) {
	config := defaultConfig()

	// Load from environment variables and config file
	if err := loadConfigFromEnvAndFile(config); err != nil {
		return nil, err
	}

	// Apply command-line flags (only if not already parsed)
	if !flag.Parsed() {
		portFlag := flag.Int("port", config.Port, "Port to listen on")
		upstreamFlag := flag.String("upstream", config.Upstream, "Upstream yaps API base URL")
		logLevelFlag := flag.String("log-level", config.LogLevel, "Log level (debug, info, warn, error)")
		configFileFlag := flag.String("config", "", "Path to config file")

		flag.Parse()

		config.Port = *portFlag
		config.Upstream = *upstreamFlag
		config.LogLevel = *logLevelFlag

		// Load config file from flag if specified
		if *configFileFlag != "" {
			if err := loadConfigFromFile(*configFileFlag, config); err != nil {
				return nil, fmt.Errorf("failed to load config file: %v", err)
			}
		}
	}

	return config, nil
}

// loadConfigFromEnvAndFile loads configuration from environment variables and config file
func loadConfigFromEnvAndFile(config *Config) error {
	// Load from config file first (if it exists)
	if configFile := os.Getenv("YAPS_CONFIG_FILE"); configFile != "" {
		if err := loadConfigFromFile(configFile, config); err != nil {
			return fmt.Errorf("failed to load config file: %v", err)
		}
	}

	// Environment variables override config file
	if portStr := os.Getenv("YAPS_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Port = port
		}
	}

	if upstream := os.Getenv("YAPS_UPSTREAM"); upstream != "" {
		config.Upstream = upstream
	}

	if logLevel := os.Getenv("YAPS_LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}

	return nil
}

// LoadTestConfig loads configuration for testing (without parsing flags)
func LoadTestConfig() (*Config, error) {
	config := defaultConfig()
	return config, loadConfigFromEnvAndFile(config)
}

// loadConfigFromFile loads configuration from a JSON file
func loadConfigFromFile(filename string, config *Config) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	return decoder.Decode(config)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Default values
	DefaultPort             = 8080
	DefaultHost             = "127.0.0.1"
	DefaultLogLevel         = "info"
	DefaultMaxFileSize      = 20 * 1024 * 1024 // 20MB
	DefaultMaxContentLength = 100000           // runes
	DefaultWorkers          = 4
	MaxWorkers              = 64

	// Directory permissions
	DefaultDirPerm = 0o750

	// EnvPrefix prefixes every environment variable the server reads
	EnvPrefix = "UZDOC"
)

// Config holds all configuration for the document analyzer server
type Config struct {
	// Server configuration
	Mode string // "server" or "stdio"
	Host string
	Port int

	// Document configuration
	DocumentDirectory string
	MaxFileSize       int64 // Maximum document file size in bytes
	MaxContentLength  int   // Maximum analyzed text length in runes
	Workers           int   // Concurrent files in batch analysis
	RulesFile         string

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:              ModeStdio, // stdio is what MCP clients launch
		Host:              DefaultHost,
		Port:              DefaultPort,
		DocumentDirectory: currentDir,
		MaxFileSize:       DefaultMaxFileSize,
		MaxContentLength:  DefaultMaxContentLength,
		Workers:           DefaultWorkers,
		Version:           "1.0.0",
		ServerName:        "uzdoc-analyzer",
		LogLevel:          DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and environment variables and
// returns a validated configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	if cfg.DocumentDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.DocumentDirectory); err == nil {
			cfg.DocumentDirectory = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("dir", cfg.DocumentDirectory)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("maxcontentlength", cfg.MaxContentLength)
	viper.SetDefault("workers", cfg.Workers)
	viper.SetDefault("rules", cfg.RulesFile)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Server mode: 'stdio' for MCP standard I/O, 'server' for HTTP server")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("dir", cfg.DocumentDirectory, "Directory containing documents to analyze")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum document file size in bytes")
	pflag.Int("maxcontentlength", cfg.MaxContentLength, "Maximum analyzed text length in characters (0 disables the cap)")
	pflag.Int("workers", cfg.Workers, "Number of files analyzed concurrently in batch mode")
	pflag.String("rules", cfg.RulesFile, "Optional YAML file extending the built-in rule tables")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	for _, name := range []string{
		"mode", "host", "port", "dir", "loglevel",
		"maxfilesize", "maxcontentlength", "workers", "rules",
	} {
		_ = viper.BindPFlag(name, pflag.Lookup(name))
	}
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nUzbek Document Analyzer - A Model Context Protocol server for analyzing "+
			"Uzbek administrative correspondence\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                   "+
			"# stdio mode, current directory (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/srv/kirish                 "+
			"# stdio mode with custom directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --rules=/etc/uzdoc/rules.yaml     "+
			"# extend the built-in rule tables\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --workers=8 --maxfilesize=52428800 # larger batches\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  UZDOC_MODE              Server mode\n")
		fmt.Fprintf(os.Stderr, "  UZDOC_HOST              Server host\n")
		fmt.Fprintf(os.Stderr, "  UZDOC_PORT              Server port\n")
		fmt.Fprintf(os.Stderr, "  UZDOC_DIR               Document directory\n")
		fmt.Fprintf(os.Stderr, "  UZDOC_LOGLEVEL          Log level\n")
		fmt.Fprintf(os.Stderr, "  UZDOC_MAXFILESIZE       Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  UZDOC_MAXCONTENTLENGTH  Maximum text length\n")
		fmt.Fprintf(os.Stderr, "  UZDOC_WORKERS           Batch concurrency\n")
		fmt.Fprintf(os.Stderr, "  UZDOC_RULES             Rule extension file\n")
	}
}

// ErrVersionRequested is returned when a version flag is present on the command line
var ErrVersionRequested = errors.New("version requested")

// checkVersionFlag checks if version flag was requested
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return ErrVersionRequested
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.DocumentDirectory = viper.GetString("dir")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.MaxContentLength = viper.GetInt("maxcontentlength")
	cfg.Workers = viper.GetInt("workers")
	cfg.RulesFile = viper.GetString("rules")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be either 'stdio' or 'server'")
	}

	// Port only matters in server mode
	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	if c.DocumentDirectory == "" {
		return errors.New("document directory cannot be empty")
	}

	// Create the document directory if it doesn't exist
	if _, err := os.Stat(c.DocumentDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.DocumentDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create document directory %s: %w", c.DocumentDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access document directory %s: %w", c.DocumentDirectory, err)
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	if c.MaxContentLength < 0 {
		return errors.New("maximum content length cannot be negative")
	}

	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d", MaxWorkers)
	}

	if c.RulesFile != "" {
		info, err := os.Stat(c.RulesFile)
		if err != nil {
			return fmt.Errorf("cannot access rules file %s: %w", c.RulesFile, err)
		}
		if info.IsDir() {
			return fmt.Errorf("rules file is a directory: %s", c.RulesFile)
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, DocumentDirectory: %s, LogLevel: %s, "+
		"MaxFileSize: %d, MaxContentLength: %d, Workers: %d, RulesFile: %s}",
		c.Mode, c.Host, c.Port, c.DocumentDirectory, c.LogLevel,
		c.MaxFileSize, c.MaxContentLength, c.Workers, c.RulesFile)
}

// IsServerMode returns true if the server is running in HTTP server mode
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if the server is running in stdio mode
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

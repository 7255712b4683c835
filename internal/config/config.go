package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Default configuration values.
const (
	DefaultMaxHistorySize = 100
	DefaultMaxInputValue  = 1e308
	DefaultPrecision      = 10
	DefaultEncoding       = "utf-8"

	defaultHistoryDir = "history"
	defaultLogDir     = "logs"

	historyFileName = "history.csv"
	logFileName     = "abacus.log"
)

// Environment variable names.
const (
	envMaxHistorySize = "ABACUS_MAX_HISTORY_SIZE"
	envMaxInputValue  = "ABACUS_MAX_INPUT_VALUE"
	envPrecision      = "ABACUS_PRECISION"
	envAutoSave       = "ABACUS_AUTO_SAVE"
	envHistoryDir     = "ABACUS_HISTORY_DIR"
	envLogDir         = "ABACUS_LOG_DIR"
	envEncoding       = "ABACUS_DEFAULT_ENCODING"
)

// Config holds the calculator's configuration.
type Config struct {
	// MaxHistorySize bounds the number of retained history records.
	MaxHistorySize int
	// MaxInputValue bounds the magnitude of accepted operands.
	MaxInputValue float64
	// Precision is the number of decimal places results are rounded to.
	Precision int
	// AutoSave persists the history after every calculation.
	AutoSave bool
	// Encoding is the recorded text encoding of persisted files.
	// Recorded for the persisted format; Go file I/O is always UTF-8.
	Encoding string

	// HistoryDir and LogDir are created on load.
	HistoryDir string
	LogDir     string

	// HistoryFile and LogFile are derived from the directories.
	HistoryFile string
	LogFile     string
}

// Option configures the loader.
type Option func(*loader)

// WithFile sets the path of an optional JSON configuration file.
func WithFile(path string) Option {
	return func(l *loader) {
		l.filePath = path
	}
}

// WithBaseDir anchors relative history/log directories under dir.
func WithBaseDir(dir string) Option {
	return func(l *loader) {
		l.baseDir = dir
	}
}

// WithoutDotenv skips loading a .env file.
func WithoutDotenv() Option {
	return func(l *loader) {
		l.skipDotenv = true
	}
}

type loader struct {
	filePath   string
	baseDir    string
	skipDotenv bool
}

// Load resolves the configuration from defaults, the optional JSON file,
// and environment variables, then validates it and creates the history and
// log directories.
func Load(opts ...Option) (*Config, error) {
	var l loader
	for _, opt := range opts {
		opt(&l)
	}

	if !l.skipDotenv {
		// A missing .env is the normal case, not an error.
		_ = godotenv.Load()
	}

	cfg := &Config{
		MaxHistorySize: DefaultMaxHistorySize,
		MaxInputValue:  DefaultMaxInputValue,
		Precision:      DefaultPrecision,
		AutoSave:       true,
		Encoding:       DefaultEncoding,
		HistoryDir:     defaultHistoryDir,
		LogDir:         defaultLogDir,
	}

	if l.filePath != "" {
		if err := cfg.applyFile(l.filePath); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if l.baseDir != "" {
		if !filepath.IsAbs(cfg.HistoryDir) {
			cfg.HistoryDir = filepath.Join(l.baseDir, cfg.HistoryDir)
		}
		if !filepath.IsAbs(cfg.LogDir) {
			cfg.LogDir = filepath.Join(l.baseDir, cfg.LogDir)
		}
	}

	for _, dir := range []string{cfg.HistoryDir, cfg.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &Error{Key: "directory", Value: dir, Err: err}
		}
	}
	cfg.HistoryFile = filepath.Join(cfg.HistoryDir, historyFileName)
	cfg.LogFile = filepath.Join(cfg.LogDir, logFileName)

	return cfg, nil
}

// applyFile overlays settings from a JSON configuration file.
// A missing file is ignored; an unreadable or malformed one is an error.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &Error{Key: "file", Value: path, Err: err}
	}
	if !gjson.ValidBytes(data) {
		return &Error{Key: "file", Value: path, Err: fmt.Errorf("%w: not valid JSON", ErrInvalidValue)}
	}

	doc := gjson.ParseBytes(data)
	if v := doc.Get("max_history_size"); v.Exists() {
		c.MaxHistorySize = int(v.Int())
	}
	if v := doc.Get("max_input_value"); v.Exists() {
		c.MaxInputValue = v.Float()
	}
	if v := doc.Get("precision"); v.Exists() {
		c.Precision = int(v.Int())
	}
	if v := doc.Get("auto_save"); v.Exists() {
		c.AutoSave = v.Bool()
	}
	if v := doc.Get("history_dir"); v.Exists() {
		c.HistoryDir = v.String()
	}
	if v := doc.Get("log_dir"); v.Exists() {
		c.LogDir = v.String()
	}
	if v := doc.Get("encoding"); v.Exists() {
		c.Encoding = v.String()
	}
	return nil
}

// applyEnv overlays settings from ABACUS_* environment variables.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envMaxHistorySize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &Error{Key: envMaxHistorySize, Value: v, Err: ErrInvalidValue}
		}
		c.MaxHistorySize = n
	}
	if v, ok := os.LookupEnv(envMaxInputValue); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &Error{Key: envMaxInputValue, Value: v, Err: ErrInvalidValue}
		}
		c.MaxInputValue = f
	}
	if v, ok := os.LookupEnv(envPrecision); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &Error{Key: envPrecision, Value: v, Err: ErrInvalidValue}
		}
		c.Precision = n
	}
	if v, ok := os.LookupEnv(envAutoSave); ok {
		c.AutoSave = parseBool(v)
	}
	if v, ok := os.LookupEnv(envHistoryDir); ok {
		c.HistoryDir = v
	}
	if v, ok := os.LookupEnv(envLogDir); ok {
		c.LogDir = v
	}
	if v, ok := os.LookupEnv(envEncoding); ok {
		c.Encoding = v
	}
	return nil
}

// validate rejects values no component can operate with.
func (c *Config) validate() error {
	if c.MaxHistorySize <= 0 {
		return &Error{
			Key:   envMaxHistorySize,
			Value: strconv.Itoa(c.MaxHistorySize),
			Err:   fmt.Errorf("%w: must be positive", ErrInvalidValue),
		}
	}
	if c.MaxInputValue <= 0 {
		return &Error{
			Key:   envMaxInputValue,
			Value: strconv.FormatFloat(c.MaxInputValue, 'g', -1, 64),
			Err:   fmt.Errorf("%w: must be positive", ErrInvalidValue),
		}
	}
	if c.Precision < 0 {
		return &Error{
			Key:   envPrecision,
			Value: strconv.Itoa(c.Precision),
			Err:   fmt.Errorf("%w: must not be negative", ErrInvalidValue),
		}
	}
	return nil
}

// parseBool accepts the accepted truthy spellings; everything else is false.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// WriteDefault writes a JSON configuration file populated with the
// built-in defaults. Existing files are not overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	doc := "{}"
	var err error
	for _, kv := range []struct {
		key   string
		value any
	}{
		{"max_history_size", DefaultMaxHistorySize},
		{"max_input_value", DefaultMaxInputValue},
		{"precision", DefaultPrecision},
		{"auto_save", true},
		{"history_dir", defaultHistoryDir},
		{"log_dir", defaultLogDir},
		{"encoding", DefaultEncoding},
	} {
		doc, err = sjson.Set(doc, kv.key, kv.value)
		if err != nil {
			return &Error{Key: kv.key, Value: fmt.Sprint(kv.value), Err: err}
		}
	}

	if err := os.WriteFile(path, []byte(doc+"\n"), 0o644); err != nil {
		return &Error{Key: "file", Value: path, Err: err}
	}
	return nil
}

// Package logging provides config-driven categorized logging for uismith.
// Each category writes to its own file under <workspace>/.uismith/logs/ and
// is backed by a zap core. When debug mode is off, every logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup and CLI wiring
	CategoryDiscovery Category = "discovery" // Source adapters, symbol discovery
	CategoryRegistry  Category = "registry"  // Conflict resolution, registry builds
	CategoryStore     Category = "store"     // Registry cache persistence
	CategoryValidate  Category = "validate"  // Artifact validation
	CategorySuggest   Category = "suggest"   // Suggestion engine
	CategoryHeal      Category = "heal"      // Self-healing retry loop
	CategoryGenerate  Category = "generate"  // LLM generation calls
	CategoryWatch     Category = "watch"     // Filesystem watcher
)

// Config controls which categories log and at what level.
type Config struct {
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode"`
	Level      string          `yaml:"level" json:"level"`
	Categories map[string]bool `yaml:"categories" json:"categories"`
}

// Logger wraps a zap sugared logger bound to one category.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	mu      sync.RWMutex
	loggers = make(map[Category]*Logger)
	logsDir string
	cfg     Config
	level   zapcore.Level
	nop     = &Logger{sugar: zap.NewNop().Sugar()}
)

// Initialize sets up the logging directory and category filter. Must be
// called once at startup with the workspace path; before that (or when
// debug mode is off) all loggers are silent.
func Initialize(workspace string, c Config) error {
	mu.Lock()
	defer mu.Unlock()

	cfg = c
	loggers = make(map[Category]*Logger)

	switch c.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	if !c.DebugMode {
		return nil // Silent no-op in production mode.
	}
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}

	logsDir = filepath.Join(workspace, ".uismith", "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := get(CategoryBoot)
	boot.Info("=== uismith logging initialized ===")
	boot.Info("logs dir: %s, level: %s", logsDir, level)
	return nil
}

// Get returns the logger for a category, creating it on first use.
func Get(category Category) *Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	return get(category)
}

// get builds the category logger; caller holds mu.
func get(category Category) *Logger {
	if l, ok := loggers[category]; ok {
		return l
	}
	if !cfg.DebugMode || !categoryEnabled(category) {
		loggers[category] = nop
		return nop
	}

	path := filepath.Join(logsDir, string(category)+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] cannot open %s: %v\n", path, err)
		loggers[category] = nop
		return nop
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(f),
		level,
	)
	l := &Logger{
		category: category,
		sugar:    zap.New(core).Sugar().Named(string(category)),
	}
	loggers[category] = l
	return l
}

// categoryEnabled reports whether the category passes the config filter.
// An empty filter enables everything.
func categoryEnabled(category Category) bool {
	if len(cfg.Categories) == 0 {
		return true
	}
	enabled, ok := cfg.Categories[string(category)]
	return ok && enabled
}

func (l *Logger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Category convenience helpers, matching call sites like
// logging.Discovery("scanned %d files", n).

func Discovery(format string, args ...interface{})      { Get(CategoryDiscovery).Info(format, args...) }
func DiscoveryDebug(format string, args ...interface{}) { Get(CategoryDiscovery).Debug(format, args...) }
func Registry(format string, args ...interface{})       { Get(CategoryRegistry).Info(format, args...) }
func RegistryDebug(format string, args ...interface{})  { Get(CategoryRegistry).Debug(format, args...) }
func Store(format string, args ...interface{})          { Get(CategoryStore).Info(format, args...) }
func StoreDebug(format string, args ...interface{})     { Get(CategoryStore).Debug(format, args...) }
func Validate(format string, args ...interface{})       { Get(CategoryValidate).Info(format, args...) }
func ValidateDebug(format string, args ...interface{})  { Get(CategoryValidate).Debug(format, args...) }
func Heal(format string, args ...interface{})           { Get(CategoryHeal).Info(format, args...) }
func HealDebug(format string, args ...interface{})      { Get(CategoryHeal).Debug(format, args...) }
func Generate(format string, args ...interface{})       { Get(CategoryGenerate).Info(format, args...) }
func GenerateDebug(format string, args ...interface{})  { Get(CategoryGenerate).Debug(format, args...) }
func Watch(format string, args ...interface{})          { Get(CategoryWatch).Info(format, args...) }
func WatchDebug(format string, args ...interface{})     { Get(CategoryWatch).Debug(format, args...) }

// Timer measures the duration of an operation and logs it on Stop.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation within a category.
func StartTimer(category Category, op string) *Timer {
	return &Timer{category: category, op: op, start: time.Now()}
}

// Stop logs the elapsed time at debug level.
func (t *Timer) Stop() {
	Get(t.category).Debug("%s took %v", t.op, time.Since(t.start))
}

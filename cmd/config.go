package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "scopeaudit"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	repoRootFlagName  = "repo-root"
	excludeFlagName   = "exclude"
	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"
	outputFlagName    = "output"
	markdownFlagName  = "markdown"
	locatorFlagName   = "locator"
	parallelFlagName  = "parallel"
	baselineFlagName  = "baseline"
	auditJSONFlagName = "audit-json"
	quietFlagName     = "quiet"
	policyDocFlagName = "policy-doc"

	repoRootConfigKey  = "repo_root"
	excludeConfigKey   = "audit.exclude"
	outputConfigKey    = "audit.output"
	markdownConfigKey  = "audit.markdown"
	locatorConfigKey   = "audit.locator"
	parallelConfigKey  = "audit.parallel"
	baselineConfigKey  = "guard.baseline"
	policyDocConfigKey = "guard.policy_doc"
	quietConfigKey     = "guard.quiet"

	defaultRepoRoot  = "."
	defaultOutput    = "panic-unsafe-audit.json"
	defaultMarkdown  = ""
	defaultLocator   = "native"
	defaultParallel  = 1
	defaultBaseline  = "tasks/policies/panic-unsafe-baseline.json"
	defaultPolicyDoc = "docs/guides/panic-unsafe-policy.md"
	defaultQuiet     = false

	envPrefix = "SCOPEAUDIT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".scopeaudit.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(repoRootConfigKey, defaultRepoRoot)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(outputConfigKey, defaultOutput)
	viper.SetDefault(markdownConfigKey, defaultMarkdown)
	viper.SetDefault(locatorConfigKey, defaultLocator)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(baselineConfigKey, defaultBaseline)
	viper.SetDefault(policyDocConfigKey, defaultPolicyDoc)
	viper.SetDefault(quietConfigKey, defaultQuiet)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

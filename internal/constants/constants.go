package constants

const (
	AppName            = "mealweek"
	DefaultKeyringUser = "database-connection"
	Version            = "v0.3.0"

	// Environment variables
	EnvConfigPath   = "MEALWEEK_CONFIG"
	EnvPrefix       = "MEALWEEK_"
	EnvDBConnection = "MEALWEEK_DB_CONNECTION"

	// Default document names under the user config directory
	DefaultCatalogFile  = "database.yaml"
	DefaultSeasonalFile = "seasonal.yaml"
	DefaultHistoryFile  = "history.yaml"
	DefaultSettingsFile = "config.yaml"

	// Generation defaults
	DefaultMeals        = 7
	DefaultVeggieMeals  = 0
	DefaultSpecialMeals = 0
	DefaultHistoryWeeks = 1
	DaysPerWeek         = 7

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Log rotation
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "history-"
)

package config

import "time"

// Application constants for the foam property explorer.
const (
	// Application Info
	AppName   = "Foam Property Explorer"
	AppVendor = "foamcli"

	// EnvPrefix is the envconfig prefix for all environment variables.
	EnvPrefix = "FOAM"

	// DefaultConfigFile is the YAML file looked up next to the binary.
	DefaultConfigFile = "foamcli.yaml"

	// Network Timeouts
	DefaultHTTPTimeout = 30 * time.Second

	// File Paths (relative to working directory)
	DefaultDataDir    = "data"
	DefaultExportsDir = "data/exports"
	DefaultLogsDir    = "logs"

	// Export Settings
	ExportSheetName = "Dataset"
	ExportExtension = ".xlsx"
)

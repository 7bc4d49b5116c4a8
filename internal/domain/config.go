package domain

// Config mirrors ~/.calchub/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Storage             StorageSettings `yaml:"storage"`
	History             HistorySettings `yaml:"history"`
	Export              ExportSettings  `yaml:"export"`
	API                 APISettings     `yaml:"api"`
}

// StorageSettings selects and locates the persistence backend.
type StorageSettings struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Dir     string `yaml:"dir"`
}

// HistorySettings captures history display preferences.
type HistorySettings struct {
	RecentLimit int `yaml:"recent_limit"`
}

// ExportSettings controls where export documents are written.
type ExportSettings struct {
	Dir string `yaml:"dir"`
}

// APISettings configures the optional HTTP surface.
type APISettings struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

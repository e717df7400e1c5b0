package config

const (
	defaultLogDir      = "~/.local/share/videofix/logs"
	defaultHistoryPath = "~/.local/share/videofix/history.db"
)

// Default returns a Config populated with repository defaults.
// Targets always come from the config file; there is no built-in policy.
func Default() Config {
	return Config{
		LogDir: defaultLogDir,
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
	}
}

package config

const (
	defaultFFprobeBinary       = "ffprobe"
	defaultProbeTimeoutSeconds = 60
	defaultSpeakerLabel        = "Speaker"
	defaultHistoryPath         = "~/.local/share/subgrid/history.db"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Probe: Probe{
			FFprobeBinary:  defaultFFprobeBinary,
			TimeoutSeconds: defaultProbeTimeoutSeconds,
		},
		Convert: Convert{
			SpeakerLabel: defaultSpeakerLabel,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

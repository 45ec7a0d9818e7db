package config

const (
	defaultLogDir        = "~/.local/share/sidesplit/logs"
	defaultHistoryDB     = "~/.local/share/sidesplit/history.db"
	defaultLockFile      = "~/.local/share/sidesplit/encode.lock"
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultQuality       = "lossless"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
			LockFile:  defaultLockFile,
		},
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Encoding: Encoding{
			Quality:       defaultQuality,
			HardwareAccel: true,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

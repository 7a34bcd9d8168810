package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/dmitrijs2005/capcheck/internal/flagx"
)

// JsonConfig is a DTO used for file and environment overlays. Durations are
// strings such as "30s" and are parsed after reading.
type JsonConfig struct {
	BaseURL             string  `json:"base_url" env:"CAPCHECK_BASE_URL"`
	DBPath              string  `json:"db_path" env:"CAPCHECK_DB_PATH"`
	DefaultUserID       string  `json:"default_user_id" env:"CAPCHECK_DEFAULT_USER_ID"`
	Latitude            string  `json:"latitude" env:"CAPCHECK_LATITUDE"`
	Longitude           string  `json:"longitude" env:"CAPCHECK_LONGITUDE"`
	MushroomID          string  `json:"mushroom_id" env:"CAPCHECK_MUSHROOM_ID"`
	CompressionQuality  float64 `json:"compression_quality" env:"CAPCHECK_COMPRESSION_QUALITY"`
	LibraryDir          string  `json:"library_dir" env:"CAPCHECK_LIBRARY_DIR"`
	WorkDir             string  `json:"work_dir" env:"CAPCHECK_WORK_DIR"`
	KeepFeedOnError     bool    `json:"keep_feed_on_error" env:"CAPCHECK_KEEP_FEED_ON_ERROR"`
	RequestTimeout      string  `json:"request_timeout" env:"CAPCHECK_REQUEST_TIMEOUT"`
	OnlineCheckInterval string  `json:"online_check_interval" env:"CAPCHECK_ONLINE_CHECK_INTERVAL"`
	LogLevel            string  `json:"log_level" env:"CAPCHECK_LOG_LEVEL"`
	LogFormat           string  `json:"log_format" env:"CAPCHECK_LOG_FORMAT"`
	SentryDSN           string  `json:"sentry_dsn" env:"CAPCHECK_SENTRY_DSN"`
}

func newJsonConfig(cfg *Config) JsonConfig {
	return JsonConfig{
		BaseURL:             cfg.BaseURL,
		DBPath:              cfg.DBPath,
		DefaultUserID:       cfg.DefaultUserID,
		Latitude:            cfg.Latitude,
		Longitude:           cfg.Longitude,
		MushroomID:          cfg.MushroomID,
		CompressionQuality:  cfg.CompressionQuality,
		LibraryDir:          cfg.LibraryDir,
		WorkDir:             cfg.WorkDir,
		KeepFeedOnError:     cfg.KeepFeedOnError,
		RequestTimeout:      cfg.RequestTimeout.String(),
		OnlineCheckInterval: cfg.OnlineCheckInterval.String(),
		LogLevel:            cfg.LogLevel,
		LogFormat:           cfg.LogFormat,
		SentryDSN:           cfg.SentryDSN,
	}
}

func (jc JsonConfig) apply(cfg *Config) error {
	requestTimeout, err := time.ParseDuration(jc.RequestTimeout)
	if err != nil {
		return err
	}
	onlineCheckInterval, err := time.ParseDuration(jc.OnlineCheckInterval)
	if err != nil {
		return err
	}

	cfg.BaseURL = jc.BaseURL
	cfg.DBPath = jc.DBPath
	cfg.DefaultUserID = jc.DefaultUserID
	cfg.Latitude = jc.Latitude
	cfg.Longitude = jc.Longitude
	cfg.MushroomID = jc.MushroomID
	cfg.CompressionQuality = jc.CompressionQuality
	cfg.LibraryDir = jc.LibraryDir
	cfg.WorkDir = jc.WorkDir
	cfg.KeepFeedOnError = jc.KeepFeedOnError
	cfg.RequestTimeout = requestTimeout
	cfg.OnlineCheckInterval = onlineCheckInterval
	cfg.LogLevel = jc.LogLevel
	cfg.LogFormat = jc.LogFormat
	cfg.SentryDSN = jc.SentryDSN
	return nil
}

// parseJson overlays Config with values from a JSON file and from CAPCHECK_*
// environment variables, environment winning over the file.
//
// The file path comes from -c or -config; without it only the environment is
// read. Keys absent from both keep their current values. Panics on read,
// unmarshal or duration errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jc := newJsonConfig(cfg)

	if path := flagx.ConfigPath(os.Args[1:]); path != "" {
		if err := cleanenv.ReadConfig(path, &jc); err != nil {
			panic(err)
		}
	} else if err := cleanenv.ReadEnv(&jc); err != nil {
		panic(err)
	}

	if err := jc.apply(cfg); err != nil {
		panic(err)
	}
}

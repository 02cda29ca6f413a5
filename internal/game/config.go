package game

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/embercrypt/internal/world"
)

// Config holds game configuration options, read from EMBERCRYPT_* variables.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeons.
	// A seed of 0 means a random seed will be generated.
	Seed uint64 `env:"EMBERCRYPT_SEED" envDefault:"0"`

	Locale      string `env:"EMBERCRYPT_LOCALE" envDefault:"en"`
	SavePath    string `env:"EMBERCRYPT_SAVE_PATH" envDefault:"savegame.sav"`
	HistoryPath string `env:"EMBERCRYPT_HISTORY_PATH" envDefault:"history.db"`
	LogPath     string `env:"EMBERCRYPT_LOG_PATH" envDefault:"embercrypt.log"`
	Telemetry   bool   `env:"EMBERCRYPT_TELEMETRY" envDefault:"false"`

	// Fraction of turns traced when telemetry is on.
	TelemetrySampleRatio float64 `env:"EMBERCRYPT_TELEMETRY_SAMPLE_RATIO" envDefault:"1"`

	// Floor layout
	MapWidth          int `env:"EMBERCRYPT_MAP_WIDTH" envDefault:"64"`
	MapHeight         int `env:"EMBERCRYPT_MAP_HEIGHT" envDefault:"39"`
	MaxRooms          int `env:"EMBERCRYPT_MAX_ROOMS" envDefault:"30"`
	RoomMinSize       int `env:"EMBERCRYPT_ROOM_MIN_SIZE" envDefault:"6"`
	RoomMaxSize       int `env:"EMBERCRYPT_ROOM_MAX_SIZE" envDefault:"12"`
	MaxFloor          int `env:"EMBERCRYPT_MAX_FLOOR" envDefault:"5"`
	FOVRadius         int `env:"EMBERCRYPT_FOV_RADIUS" envDefault:"8"`
	PlacementAttempts int `env:"EMBERCRYPT_PLACEMENT_ATTEMPTS" envDefault:"30"`
}

// LoadConfig parses the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	var cfg Config
	// Defaults only; parsing an empty environment cannot fail.
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// Validate rejects layouts the generator cannot produce.
func (c Config) Validate() error {
	var errs []error
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be positive", c.MapWidth, c.MapHeight))
	}
	if c.RoomMinSize < 4 {
		errs = append(errs, fmt.Errorf("room min size %d must be at least 4", c.RoomMinSize))
	}
	if c.RoomMinSize > c.RoomMaxSize {
		errs = append(errs, fmt.Errorf("room min size %d exceeds max size %d", c.RoomMinSize, c.RoomMaxSize))
	}
	if c.RoomMaxSize >= c.MapWidth || c.RoomMaxSize >= c.MapHeight {
		errs = append(errs, fmt.Errorf("room max size %d does not fit a %dx%d map", c.RoomMaxSize, c.MapWidth, c.MapHeight))
	}
	if c.MaxRooms <= 0 {
		errs = append(errs, fmt.Errorf("max rooms %d must be positive", c.MaxRooms))
	}
	if c.MaxFloor <= 0 {
		errs = append(errs, fmt.Errorf("max floor %d must be positive", c.MaxFloor))
	}
	if c.FOVRadius <= 0 {
		errs = append(errs, fmt.Errorf("fov radius %d must be positive", c.FOVRadius))
	}
	if c.PlacementAttempts <= 0 {
		errs = append(errs, fmt.Errorf("placement attempts %d must be positive", c.PlacementAttempts))
	}
	if c.TelemetrySampleRatio < 0 || c.TelemetrySampleRatio > 1 {
		errs = append(errs, fmt.Errorf("telemetry sample ratio %v must be within [0, 1]", c.TelemetrySampleRatio))
	}
	if c.SavePath == "" {
		errs = append(errs, errors.New("save path is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GeneratorConfig returns the floor layout parameters.
func (c Config) GeneratorConfig() world.GeneratorConfig {
	gc := world.DefaultGeneratorConfig()
	gc.Width = c.MapWidth
	gc.Height = c.MapHeight
	gc.MaxRooms = c.MaxRooms
	gc.RoomMinSize = c.RoomMinSize
	gc.RoomMaxSize = c.RoomMaxSize
	gc.MaxFloor = c.MaxFloor
	gc.PlacementAttempts = c.PlacementAttempts
	return gc
}

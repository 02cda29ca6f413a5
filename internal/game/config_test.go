package game

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"MapWidth", cfg.MapWidth, 64},
		{"MapHeight", cfg.MapHeight, 39},
		{"MaxRooms", cfg.MaxRooms, 30},
		{"RoomMinSize", cfg.RoomMinSize, 6},
		{"RoomMaxSize", cfg.RoomMaxSize, 12},
		{"MaxFloor", cfg.MaxFloor, 5},
		{"FOVRadius", cfg.FOVRadius, 8},
		{"PlacementAttempts", cfg.PlacementAttempts, 30},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if cfg.Locale != "en" || cfg.SavePath != "savegame.sav" || cfg.Telemetry {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("EMBERCRYPT_SEED", "42")
	t.Setenv("EMBERCRYPT_LOCALE", "es")
	t.Setenv("EMBERCRYPT_MAX_FLOOR", "3")
	t.Setenv("EMBERCRYPT_TELEMETRY", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Seed != 42 || cfg.Locale != "es" || cfg.MaxFloor != 3 || !cfg.Telemetry {
		t.Errorf("LoadConfig() = %+v", cfg)
	}

	gc := cfg.GeneratorConfig()
	if gc.MaxFloor != 3 || gc.Width != cfg.MapWidth {
		t.Errorf("GeneratorConfig() = %+v", gc)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	t.Setenv("EMBERCRYPT_ROOM_MIN_SIZE", "20")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() accepted min size above max size")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"tiny rooms", func(c *Config) { c.RoomMinSize = 3 }, "at least 4"},
		{"room too big", func(c *Config) { c.RoomMaxSize = 80 }, "does not fit"},
		{"no floors", func(c *Config) { c.MaxFloor = 0 }, "max floor"},
		{"no fov", func(c *Config) { c.FOVRadius = 0 }, "fov radius"},
		{"no save path", func(c *Config) { c.SavePath = "" }, "save path"},
		{"sample ratio", func(c *Config) { c.TelemetrySampleRatio = 1.5 }, "sample ratio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

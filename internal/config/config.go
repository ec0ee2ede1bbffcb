// Package config loads tilecore settings from YAML files layered over
// embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/tilecore"
	"github.com/gravitas-015/tilecore/field"
	"github.com/gravitas-015/tilecore/internal/worldgen"
	"github.com/gravitas-015/tilecore/resource"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tilecore settings.
type Config struct {
	Map    MapConfig              `yaml:"map"`
	Field  FieldConfig            `yaml:"field"`
	Combat CombatConfig           `yaml:"combat"`
	Path   PathConfig             `yaml:"path"`
	Bench  BenchConfig            `yaml:"bench"`
	Yields map[string]YieldConfig `yaml:"yields"`
}

// MapConfig holds world generation settings.
type MapConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Players        int     `yaml:"players"`
	SeaLevel       float64 `yaml:"sea_level"`
	MountainLevel  float64 `yaml:"mountain_level"`
	ClaimRadius    int     `yaml:"claim_radius"`
	UnitsPerPlayer int     `yaml:"units_per_player"`
}

// FieldConfig holds influence field settings.
type FieldConfig struct {
	Sigma           float64 `yaml:"sigma"`
	UnitWeight      float64 `yaml:"unit_weight"`
	TerritoryWeight float64 `yaml:"territory_weight"`
}

// CombatConfig holds target acquisition settings.
type CombatConfig struct {
	Radius  float64 `yaml:"radius"`   // world units
	HexSize float64 `yaml:"hex_size"` // hex outer radius in world units
}

// PathConfig holds pathfinding settings.
type PathConfig struct {
	MaxDistance int     `yaml:"max_distance"`
	MoveBudget  float64 `yaml:"move_budget"`
}

// BenchConfig holds benchmark loop settings.
type BenchConfig struct {
	Rounds int `yaml:"rounds"`
	Warmup int `yaml:"warmup"`
}

// YieldConfig overrides the yields of one terrain type.
type YieldConfig struct {
	Food       int32 `yaml:"food"`
	Production int32 `yaml:"production"`
	Gold       int32 `yaml:"gold"`
}

// terrainByName maps yield section keys to tile types.
var terrainByName = map[string]tilecore.TileType{
	"plains":         tilecore.Plains,
	"forest":         tilecore.Forest,
	"mountain":       tilecore.Mountain,
	"water":          tilecore.Water,
	"desert":         tilecore.Desert,
	"fertile_plains": tilecore.FertilePlains,
}

// Load reads configuration from a YAML file, merged over the embedded
// defaults. Fields absent from the file keep their default values. An
// empty path loads the defaults alone.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	for name := range cfg.Yields {
		if _, ok := terrainByName[name]; !ok {
			return nil, fmt.Errorf("unknown terrain %q in yields", name)
		}
	}

	return &cfg, nil
}

// FieldParams returns the influence field parameters.
func (c *Config) FieldParams() field.Params {
	return field.Params{
		Sigma:           c.Field.Sigma,
		UnitWeight:      c.Field.UnitWeight,
		TerritoryWeight: c.Field.TerritoryWeight,
	}
}

// YieldTable builds the per-terrain yield table with any configured
// overrides applied on top of the built-in defaults.
func (c *Config) YieldTable() resource.Table {
	table := resource.DefaultTable()
	for name, y := range c.Yields {
		table[terrainByName[name]] = resource.Yield{
			Food:       y.Food,
			Production: y.Production,
			Gold:       y.Gold,
		}
	}
	return table
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WorldParams returns map generation parameters for the given seed.
func (c *Config) WorldParams(seed int64) worldgen.Params {
	return worldgen.Params{
		Width:          c.Map.Width,
		Height:         c.Map.Height,
		Players:        c.Map.Players,
		Seed:           seed,
		SeaLevel:       c.Map.SeaLevel,
		MountainLevel:  c.Map.MountainLevel,
		ClaimRadius:    c.Map.ClaimRadius,
		UnitsPerPlayer: c.Map.UnitsPerPlayer,
	}
}

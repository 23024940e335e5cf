package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config holds simulator configuration
type Config struct {
	// Page table configuration
	FrameCount uint32 `json:"frame_count"` // Number of physical frames
	Policy     string `json:"policy"`      // Eviction policy (opt, clock, nru, rand, lru)

	// Policy configuration
	RefreshRate uint64 `json:"refresh_rate"` // NRU reference-bit refresh period (accesses)
	Seed        int64  `json:"seed"`         // Seed for the rand policy

	// Trace configuration
	TracePath string `json:"trace_path"` // Path to the recorded trace
	MmapTrace bool   `json:"mmap_trace"` // Load the trace via memory mapping

	// Diagnostics configuration
	LogLevel string `json:"log_level"` // Log level (debug, info, warn, error)
	Verbose  bool   `json:"verbose"`   // Emit the per-access diagnostic stream
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		FrameCount: 64,
		Policy:     PolicyClock,
		Seed:       42,
		LogLevel:   "info",
	}
}

// LoadConfigFromFile loads configuration from a JSON file
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	err = json.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadConfigFromEnv loads configuration from environment variables.
// Falls back to default values if environment variables are not set
func LoadConfigFromEnv() *Config {
	config := DefaultConfig()

	if val := os.Getenv("PAGESIM_FRAME_COUNT"); val != "" {
		if frames, err := strconv.ParseUint(val, 10, 32); err == nil {
			config.FrameCount = uint32(frames)
		}
	}

	if val := os.Getenv("PAGESIM_POLICY"); val != "" {
		config.Policy = val
	}

	if val := os.Getenv("PAGESIM_REFRESH_RATE"); val != "" {
		if rate, err := strconv.ParseUint(val, 10, 64); err == nil {
			config.RefreshRate = rate
		}
	}

	if val := os.Getenv("PAGESIM_SEED"); val != "" {
		if seed, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.Seed = seed
		}
	}

	if val := os.Getenv("PAGESIM_TRACE_PATH"); val != "" {
		config.TracePath = val
	}

	if val := os.Getenv("PAGESIM_MMAP_TRACE"); val != "" {
		config.MmapTrace = val == "true" || val == "1"
	}

	if val := os.Getenv("PAGESIM_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	if val := os.Getenv("PAGESIM_VERBOSE"); val != "" {
		config.Verbose = val == "true" || val == "1"
	}

	return config
}

// SaveToFile saves the configuration to a JSON file
func (c *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.FrameCount == 0 {
		return ErrInvalidConfig("Validate", "frame count must be greater than 0")
	}

	switch c.Policy {
	case PolicyOptimal, PolicyClock, PolicyNRU, PolicyRandom, PolicyLRU:
	default:
		return ErrUnknownPolicy("Validate", c.Policy)
	}

	// The refresh period is what makes "recently" meaningful; NRU
	// without one is a configuration error, not a default.
	if c.Policy == PolicyNRU && c.RefreshRate == 0 {
		return ErrMissingRefreshRate("Validate")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.LogLevel] {
		return ErrInvalidConfig("Validate",
			fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel))
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

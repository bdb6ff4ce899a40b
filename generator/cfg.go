package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/t0m3kz/infrahub-demo-sub000/cabling"
	"github.com/t0m3kz/infrahub-demo-sub000/internal/logging"
	"github.com/t0m3kz/infrahub-demo-sub000/naming"
	"github.com/t0m3kz/infrahub-demo-sub000/pool"
	"github.com/t0m3kz/infrahub-demo-sub000/topology"
)

// Config is the planning profile of one fabric.
type Config struct {
	// Mode is the deployment mode of the fabric.
	Mode topology.DeploymentMode `yaml:"deployment_mode"`
	// Naming is the device naming convention.
	Naming *naming.Profile `yaml:"naming"`
	// Pools tunes address-pool sizing.
	Pools *pool.Profile `yaml:"pools"`
	// Strategies maps a bottom-tier device role to the cabling
	// strategy wiring that tier upward.
	Strategies map[topology.DeviceRole]string `yaml:"strategies"`
	// MaxDevicesPerRow bounds the devices of one row for offset
	// calculation in tor mode.
	MaxDevicesPerRow int `yaml:"max_devices_per_row"`
	// PortsPerRack is the top-tier port window reserved per rack
	// position by the rack strategy.
	PortsPerRack int `yaml:"ports_per_rack"`
	// Selectors restrict which interfaces of a device role take part
	// in planning, keyed by the role tag.
	Selectors map[topology.DeviceRole]SelectorConfig `yaml:"selectors"`
	// Logging configures the logger built when none is injected.
	Logging logging.Config `yaml:"logging"`
}

// SelectorConfig filters the interfaces of one device role by
// interface role and port-name glob patterns. Empty lists match
// everything.
type SelectorConfig struct {
	Roles    []topology.InterfaceRole `yaml:"roles"`
	Patterns []string                 `yaml:"patterns"`
}

// DefaultConfig returns the default planning profile: middle-rack
// deployment, standard naming and the usual wiring strategies per
// tier.
func DefaultConfig() *Config {
	return &Config{
		Mode:   topology.ModeMiddleRack,
		Naming: naming.DefaultProfile(),
		Pools:  pool.DefaultProfile(),
		Strategies: map[topology.DeviceRole]string{
			topology.RoleLeaf:     string(cabling.StrategyPod),
			topology.RoleToR:      string(cabling.StrategyIntraRack),
			topology.RoleEndpoint: string(cabling.StrategyServer),
		},
		MaxDevicesPerRow: cabling.DefaultMaxDevicesPerRow,
		PortsPerRack:     cabling.DefaultPortsPerRack,
	}
}

// LoadConfig loads configuration from a YAML file at the specified
// path, on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	return cfg, nil
}

package cabling

import (
	"fmt"

	"github.com/t0m3kz/infrahub-demo-sub000/topology"
)

// Strategy selects the pairing algorithm of the plan builder.
type Strategy string

const (
	// StrategyRack reserves a fixed window of spine ports per rack
	// position and wires each ToR into its own slot of that window.
	StrategyRack Strategy = "rack"
	// StrategyPod builds a full point-to-point mesh between every
	// bottom and every top device.
	StrategyPod Strategy = "pod"
	// StrategyServer distributes endpoint interfaces across the top
	// devices in turn.
	StrategyServer Strategy = "server"
	// StrategyIntraRack load-balances all bottom interfaces over the
	// pooled capacity of all top devices.
	StrategyIntraRack Strategy = "intra_rack"
	// StrategyIntraRackMixed assigns each ToR to one consecutive leaf
	// pair shared by all racks of a row.
	StrategyIntraRackMixed Strategy = "intra_rack_mixed"
)

// ParseStrategy validates a strategy tag coming from the orchestrator.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyRack, StrategyPod, StrategyServer, StrategyIntraRack, StrategyIntraRackMixed:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%w: unknown cabling strategy %q", topology.ErrConfig, s)
	}
}

// Direction is the order interfaces of one device are walked in.
type Direction string

const (
	TopDown  Direction = "top_down"
	BottomUp Direction = "bottom_up"
)

// ParseDirection normalizes a sort-direction tag to one of the two
// canonical directions. The legacy "sequential" and "up_down" spellings
// map to top_down; anything else is a configuration error. Alias
// normalization happens only here, the builder sees canonical values.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "top_down", "sequential", "up_down":
		return TopDown, nil
	case "bottom_up":
		return BottomUp, nil
	default:
		return "", fmt.Errorf("%w: unknown sort direction %q", topology.ErrConfig, s)
	}
}

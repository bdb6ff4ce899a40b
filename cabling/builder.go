// Package cabling produces deterministic physical cabling plans
// between two tiers of a data-center fabric, and the port offsets that
// let multiple racks share one spine or leaf pool without collisions.
package cabling

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/t0m3kz/infrahub-demo-sub000/natsort"
	"github.com/t0m3kz/infrahub-demo-sub000/topology"
)

// DefaultPortsPerRack is the width of the top-tier port window
// reserved per rack position by the rack strategy.
const DefaultPortsPerRack = 2

// Builder pairs bottom-tier interfaces with top-tier interfaces under
// a named strategy. A Builder holds only configuration; Build is a
// pure function of its arguments and safe to call concurrently.
type Builder struct {
	portsPerRack int
	log          *zap.SugaredLogger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLog attaches a logger used for debug output.
func WithLog(log *zap.SugaredLogger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

// WithPortsPerRack overrides the per-rack port window width of the
// rack strategy.
func WithPortsPerRack(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.portsPerRack = n
		}
	}
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(options ...Option) *Builder {
	b := &Builder{
		portsPerRack: DefaultPortsPerRack,
		log:          zap.NewNop().Sugar(),
	}
	for _, o := range options {
		o(b)
	}

	return b
}

// BuildParams carries the per-invocation knobs of Build.
type BuildParams struct {
	// Offset is the starting index into the shared top-tier port
	// space, as produced by Offset.
	Offset int
	// BottomSort and TopSort order each device's interfaces before
	// pairing. Zero values mean top_down.
	BottomSort Direction
	TopSort    Direction
}

// Build produces the ordered connection plan wiring bottom to top
// under the given strategy. The result is deterministic: identical
// inputs yield identical plans on every call. Insufficient top-tier
// capacity truncates the plan silently, it is not an error.
func (b *Builder) Build(bottom, top []topology.Interface, strategy Strategy, params BuildParams) (Plan, error) {
	bottomSort, err := normalizeDirection(params.BottomSort)
	if err != nil {
		return nil, err
	}
	topSort, err := normalizeDirection(params.TopSort)
	if err != nil {
		return nil, err
	}

	sorter := natsort.New()
	bottomGroups := groupByDevice(bottom, bottomSort, sorter)
	topGroups := groupByDevice(top, topSort, sorter)

	var plan Plan
	switch strategy {
	case StrategyRack:
		plan, err = b.buildRack(bottomGroups, topGroups, params.Offset)
	case StrategyPod:
		plan, err = b.buildPod(bottomGroups, topGroups)
	case StrategyServer:
		plan, err = b.buildServer(bottomGroups, topGroups)
	case StrategyIntraRack:
		plan, err = b.buildIntraRack(bottomGroups, topGroups)
	case StrategyIntraRackMixed:
		plan, err = b.buildIntraRackMixed(bottomGroups, topGroups, params.Offset)
	default:
		return nil, fmt.Errorf("%w: unknown cabling strategy %q", topology.ErrConfig, strategy)
	}
	if err != nil {
		return nil, err
	}

	b.log.Debugw("built cabling plan",
		zap.String("strategy", string(strategy)),
		zap.Int("offset", params.Offset),
		zap.Int("pairs", len(plan)),
	)

	return plan, nil
}

// normalizeDirection accepts the zero value as top_down and rejects
// anything outside the canonical vocabulary. Legacy aliases are
// handled earlier, by ParseDirection.
func normalizeDirection(d Direction) (Direction, error) {
	switch d {
	case "", TopDown:
		return TopDown, nil
	case BottomUp:
		return BottomUp, nil
	default:
		return "", fmt.Errorf("%w: unknown sort direction %q", topology.ErrConfig, d)
	}
}

// deviceGroup is the interfaces of one device, ordered for pairing.
type deviceGroup struct {
	name string
	// index is the device's 1-based numeric index, 0 if unset.
	index  int
	ifaces []topology.Interface
}

// groupByDevice splits interfaces by owning device and orders both the
// devices (always ascending natural order by name) and each device's
// interfaces (natural order, reversed for bottom_up). Grouping is an
// explicit map plus a sorted-keys pass; iteration order of the map is
// never observed.
func groupByDevice(ifaces []topology.Interface, dir Direction, sorter *natsort.Sorter) []deviceGroup {
	byDevice := make(map[string][]topology.Interface)
	for _, iface := range ifaces {
		byDevice[iface.Device] = append(byDevice[iface.Device], iface)
	}

	names := make([]string, 0, len(byDevice))
	for name := range byDevice {
		names = append(names, name)
	}
	sorter.Strings(names)

	groups := make([]deviceGroup, 0, len(names))
	for _, name := range names {
		members := byDevice[name]
		slices.SortStableFunc(members, func(a, b topology.Interface) int {
			return sorter.Compare(a.Name, b.Name)
		})
		if dir == BottomUp {
			slices.Reverse(members)
		}

		groups = append(groups, deviceGroup{
			name:   name,
			index:  members[0].DeviceIndex,
			ifaces: members,
		})
	}

	return groups
}

// buildRack wires each bottom device into the slot its numeric index
// reserves inside the top device's per-rack port window. The window
// starts at offset*portsPerRack so racks sharing the same spines land
// on disjoint ports. The k-th top device consumes the bottom device's
// k-th interface. Positions outside the window or beyond a device's
// port count are skipped, mirroring the capacity-shortfall policy.
func (b *Builder) buildRack(bottom, top []deviceGroup, offset int) (Plan, error) {
	for _, bd := range bottom {
		if bd.index <= 0 {
			return nil, fmt.Errorf("%w: rack strategy requires a numeric index on device %q",
				topology.ErrPrecondition, bd.name)
		}
	}

	plan := Plan{}
	start := offset * b.portsPerRack

	for _, bd := range bottom {
		slot := bd.index - 1
		if slot >= b.portsPerRack {
			continue
		}

		for ti, td := range top {
			if ti >= len(bd.ifaces) {
				break
			}
			if start+slot >= len(td.ifaces) {
				continue
			}

			plan = append(plan, Link{Bottom: bd.ifaces[ti], Top: td.ifaces[start+slot]})
		}
	}

	return plan, nil
}

// buildPod builds a full mesh: one link per (bottom device, top
// device) pair. Each side picks its interface by the partner's ordinal
// modulo its own interface count, so the mesh stays complete even when
// a device exposes fewer ports than it has partners.
func (b *Builder) buildPod(bottom, top []deviceGroup) (Plan, error) {
	plan := Plan{}

	for bi, bd := range bottom {
		for ti, td := range top {
			plan = append(plan, Link{
				Bottom: bd.ifaces[ti%len(bd.ifaces)],
				Top:    td.ifaces[bi%len(td.ifaces)],
			})
		}
	}

	return plan, nil
}

// buildServer walks all bottom interfaces in device order and assigns
// each to the top devices in turn. Every top device keeps a
// round-robin port cursor that persists across the whole call, so the
// distribution depends only on call order, never on external state.
func (b *Builder) buildServer(bottom, top []deviceGroup) (Plan, error) {
	if len(top) == 0 {
		return Plan{}, nil
	}

	plan := Plan{}
	cursor := make(map[string]int, len(top))

	walked := 0
	for _, bd := range bottom {
		for _, iface := range bd.ifaces {
			td := top[walked%len(top)]
			port := cursor[td.name] % len(td.ifaces)
			cursor[td.name]++
			walked++

			plan = append(plan, Link{Bottom: iface, Top: td.ifaces[port]})
		}
	}

	return plan, nil
}

// buildIntraRack pools the capacity of all top devices and assigns
// bottom interfaces round-robin across the devices: consecutive bottom
// interfaces land on different top devices before wrapping back.
// When the pool runs out the plan is truncated silently.
func (b *Builder) buildIntraRack(bottom, top []deviceGroup) (Plan, error) {
	plan := Plan{}
	if len(top) == 0 {
		return plan, nil
	}

	remaining := make([][]topology.Interface, len(top))
	for i, td := range top {
		remaining[i] = td.ifaces
	}

	next := 0
	for _, bd := range bottom {
		for _, iface := range bd.ifaces {
			assigned := false
			for probe := 0; probe < len(top); probe++ {
				i := (next + probe) % len(top)
				if len(remaining[i]) == 0 {
					continue
				}

				plan = append(plan, Link{Bottom: iface, Top: remaining[i][0]})
				remaining[i] = remaining[i][1:]
				next = i + 1
				assigned = true
				break
			}
			if !assigned {
				// Capacity exhausted: truncate.
				return plan, nil
			}
		}
	}

	return plan, nil
}

// buildIntraRackMixed splits the top-tier leafs into consecutive pairs
// and assigns each ToR to exactly one pair: the global ToR index
// (offset + local position) selects the pair by modulo and the port on
// each leaf of the pair by integer division, so ToRs in different
// racks of one row fan out across leaf ports as the offset grows.
func (b *Builder) buildIntraRackMixed(bottom, top []deviceGroup, offset int) (Plan, error) {
	plan := Plan{}

	pairs := len(top) / 2
	if pairs == 0 {
		return plan, nil
	}

	for local, bd := range bottom {
		global := offset + local
		pair := global % pairs
		port := global / pairs

		leafs := top[2*pair : 2*pair+2]
		for i, leaf := range leafs {
			if i >= len(bd.ifaces) || port >= len(leaf.ifaces) {
				continue
			}

			plan = append(plan, Link{Bottom: bd.ifaces[i], Top: leaf.ifaces[port]})
		}
	}

	return plan, nil
}

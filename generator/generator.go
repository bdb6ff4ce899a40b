// Package generator is the orchestrator-facing facade of the planning
// core. It sequences interface selection, offset calculation and plan
// building for one rack, and plans independent racks concurrently.
// The facade performs no I/O beyond optional config loading; the
// orchestrator owns every read from and write to the topology store.
package generator

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/t0m3kz/infrahub-demo-sub000/cabling"
	"github.com/t0m3kz/infrahub-demo-sub000/internal/logging"
	"github.com/t0m3kz/infrahub-demo-sub000/naming"
	"github.com/t0m3kz/infrahub-demo-sub000/pool"
	"github.com/t0m3kz/infrahub-demo-sub000/topology"
)

// Generator plans cabling, names and pool sizes for one fabric
// profile. Safe for concurrent use: all planning state lives in the
// arguments of each call.
type Generator struct {
	cfg       *Config
	builder   *cabling.Builder
	selectors map[topology.DeviceRole]*selector
	log       *zap.SugaredLogger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLog attaches a logger. Without it one is built from the
// config's logging section.
func WithLog(log *zap.SugaredLogger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// New creates a Generator from the given planning profile, validating
// the profile's strategy and selector vocabulary up front so planning
// calls only ever see canonical values.
func New(cfg *Config, options ...Option) (*Generator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	g := &Generator{
		cfg:       cfg,
		selectors: make(map[topology.DeviceRole]*selector, len(cfg.Selectors)),
	}
	for _, o := range options {
		o(g)
	}

	if g.log == nil {
		log, _, err := logging.Init(&cfg.Logging)
		if err != nil {
			return nil, err
		}
		g.log = log
	}
	g.log = g.log.With(zap.String("component", "generator"))

	for role, raw := range cfg.Strategies {
		if _, err := cabling.ParseStrategy(raw); err != nil {
			return nil, fmt.Errorf("strategy for role %q: %w", role, err)
		}
	}

	for role, sc := range cfg.Selectors {
		compiled, err := compileSelector(sc)
		if err != nil {
			return nil, fmt.Errorf("selector for role %q: %w", role, err)
		}
		g.selectors[role] = compiled
	}

	g.builder = cabling.NewBuilder(
		cabling.WithPortsPerRack(cfg.PortsPerRack),
		cabling.WithLog(g.log),
	)

	return g, nil
}

// RackRequest describes one topology unit to plan: the interface
// snapshots of both tiers and the unit's position in the fabric.
type RackRequest struct {
	// Name identifies the unit in logs and errors.
	Name string
	// Bottom and Top are the interface snapshots of the two tiers,
	// already status-filtered by the orchestrator.
	Bottom []topology.Interface
	Top    []topology.Interface
	// BottomRole is the device role of the bottom tier, used to pick
	// the strategy and the offset rule.
	BottomRole topology.DeviceRole
	// Strategy overrides the configured per-role strategy when set.
	Strategy string
	// Position locates the rack for offset calculation.
	Position topology.Position
	// BottomSort and TopSort are raw direction tags; legacy aliases
	// are accepted and empty means top_down.
	BottomSort string
	TopSort    string
}

// PlanRack builds the connection plan for one unit: select the
// participating interfaces, derive the port offset from the rack
// position, then invoke the plan builder.
func (g *Generator) PlanRack(req RackRequest) (cabling.Plan, error) {
	strategyTag := req.Strategy
	if strategyTag == "" {
		strategyTag = g.cfg.Strategies[req.BottomRole]
	}
	strategy, err := cabling.ParseStrategy(strategyTag)
	if err != nil {
		return nil, fmt.Errorf("unit %q: %w", req.Name, err)
	}

	bottomSort, err := cabling.ParseDirection(req.BottomSort)
	if err != nil {
		return nil, fmt.Errorf("unit %q: %w", req.Name, err)
	}
	topSort, err := cabling.ParseDirection(req.TopSort)
	if err != nil {
		return nil, fmt.Errorf("unit %q: %w", req.Name, err)
	}

	pos := req.Position
	if pos.Mode == "" {
		pos.Mode = g.cfg.Mode
	}
	offset := cabling.Offset(pos, req.BottomRole, g.cfg.MaxDevicesPerRow)

	plan, err := g.builder.Build(
		g.selectInterfaces(req.Bottom),
		g.selectInterfaces(req.Top),
		strategy,
		cabling.BuildParams{Offset: offset, BottomSort: bottomSort, TopSort: topSort},
	)
	if err != nil {
		return nil, fmt.Errorf("unit %q: %w", req.Name, err)
	}

	g.log.Debugw("planned unit",
		zap.String("unit", req.Name),
		zap.String("strategy", string(strategy)),
		zap.Int("offset", offset),
		zap.Int("pairs", len(plan)),
	)

	return plan, nil
}

// PlanRacks plans independent units concurrently. Results keep the
// request order; the first failing unit aborts the batch.
func (g *Generator) PlanRacks(ctx context.Context, reqs []RackRequest) ([]cabling.Plan, error) {
	plans := make([]cabling.Plan, len(reqs))

	wg, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		i, req := i, req
		wg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			plan, err := g.PlanRack(req)
			if err != nil {
				return err
			}
			plans[i] = plan

			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		return nil, err
	}

	return plans, nil
}

// DeviceName renders the canonical device name under the configured
// naming profile.
func (g *Generator) DeviceName(req naming.Request) (string, error) {
	return g.cfg.Naming.Format(req)
}

// PoolSizes computes the address-pool prefix lengths for the given
// dimensions under the configured pool profile.
func (g *Generator) PoolSizes(dim pool.Dimensions) (map[pool.Name]int, error) {
	return g.cfg.Pools.Size(dim)
}

// selectInterfaces applies the per-role selector of each interface's
// device role. Roles without a selector pass everything through.
func (g *Generator) selectInterfaces(ifaces []topology.Interface) []topology.Interface {
	if len(g.selectors) == 0 {
		return ifaces
	}

	out := make([]topology.Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		sel, ok := g.selectors[iface.DeviceRole]
		if !ok || sel.match(iface) {
			out = append(out, iface)
		}
	}

	return out
}

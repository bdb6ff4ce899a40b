package generator

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/t0m3kz/infrahub-demo-sub000/naming"
	"github.com/t0m3kz/infrahub-demo-sub000/pool"
	"github.com/t0m3kz/infrahub-demo-sub000/topology"
)

func testGenerator(t *testing.T, cfg *Config) *Generator {
	t.Helper()

	g, err := New(cfg, WithLog(zap.NewNop().Sugar()))
	require.NoError(t, err)

	return g
}

func iface(dev string, devIndex int, devRole topology.DeviceRole, port string, role topology.InterfaceRole) topology.Interface {
	return topology.Interface{
		ID:          dev + ":" + port,
		Name:        port,
		Device:      dev,
		DeviceRole:  devRole,
		DeviceIndex: devIndex,
		Role:        role,
	}
}

func torUplinks(dev string, devIndex int, ports ...string) []topology.Interface {
	out := make([]topology.Interface, 0, len(ports))
	for _, port := range ports {
		out = append(out, iface(dev, devIndex, topology.RoleToR, port, topology.IfaceUplink))
	}

	return out
}

func leafDownlinks(dev string, devIndex int, ports ...string) []topology.Interface {
	out := make([]topology.Interface, 0, len(ports))
	for _, port := range ports {
		out = append(out, iface(dev, devIndex, topology.RoleLeaf, port, topology.IfaceDownlink))
	}

	return out
}

func Test_PlanRackEndToEnd(t *testing.T) {
	g := testGenerator(t, DefaultConfig())

	req := RackRequest{
		Name:       "rack-01",
		BottomRole: topology.RoleToR,
		Position:   topology.Position{Row: 1, Rack: 1, DeviceCount: 2, Mode: topology.ModeMiddleRack},
		Bottom: append(
			torUplinks("tor-01", 1, "swp49", "swp50"),
			torUplinks("tor-02", 2, "swp49", "swp50")...,
		),
		Top: append(
			leafDownlinks("leaf-01", 1, "Ethernet1/1", "Ethernet1/2"),
			leafDownlinks("leaf-02", 2, "Ethernet1/1", "Ethernet1/2")...,
		),
	}

	plan, err := g.PlanRack(req)
	require.NoError(t, err)

	assert.Len(t, plan, 4)
	assert.NoError(t, plan.Validate())
	assert.Equal(t, "tor-01", plan[0].Bottom.Device)
	assert.Equal(t, "leaf-01", plan[0].Top.Device)
}

func Test_PlanRackAppliesSelectors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Selectors = map[topology.DeviceRole]SelectorConfig{
		topology.RoleToR: {
			Roles:    []topology.InterfaceRole{topology.IfaceUplink},
			Patterns: []string{"swp*"},
		},
	}
	g := testGenerator(t, cfg)

	bottom := []topology.Interface{
		iface("tor-01", 1, topology.RoleToR, "swp49", topology.IfaceUplink),
		iface("tor-01", 1, topology.RoleToR, "swp1", topology.IfaceAccess),
		iface("tor-01", 1, topology.RoleToR, "mgmt0", topology.IfaceUplink),
	}
	top := leafDownlinks("leaf-01", 1, "Ethernet1/1", "Ethernet1/2", "Ethernet1/3")

	plan, err := g.PlanRack(RackRequest{
		Name:       "rack-01",
		BottomRole: topology.RoleToR,
		Bottom:     bottom,
		Top:        top,
		Position:   topology.Position{Row: 1, Rack: 1, DeviceCount: 1, Mode: topology.ModeMiddleRack},
	})
	require.NoError(t, err)

	// Only the uplink matching the pattern participates.
	require.Len(t, plan, 1)
	assert.Equal(t, "tor-01:swp49", plan[0].Bottom.ID)
}

func Test_PlanRackStrategyOverrideAndErrors(t *testing.T) {
	g := testGenerator(t, DefaultConfig())

	req := RackRequest{
		Name:       "rack-01",
		BottomRole: topology.RoleToR,
		Bottom:     torUplinks("tor-01", 1, "swp49"),
		Top:        leafDownlinks("spine-01", 1, "Ethernet1/1", "Ethernet1/2"),
		Strategy:   "rack",
		Position:   topology.Position{Row: 1, Rack: 1, DeviceCount: 1, Mode: topology.ModeMiddleRack},
	}

	plan, err := g.PlanRack(req)
	require.NoError(t, err)
	assert.Len(t, plan, 1)

	req.Strategy = "diagonal"
	_, err = g.PlanRack(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, topology.ErrConfig)
	assert.Contains(t, err.Error(), "rack-01")
}

func Test_PlanRackNormalizesLegacyDirections(t *testing.T) {
	g := testGenerator(t, DefaultConfig())

	req := RackRequest{
		Name:       "rack-01",
		BottomRole: topology.RoleToR,
		Bottom:     torUplinks("tor-01", 1, "swp49", "swp50"),
		Top:        leafDownlinks("leaf-01", 1, "Ethernet1/1", "Ethernet1/2"),
		BottomSort: "sequential",
		TopSort:    "up_down",
		Position:   topology.Position{Row: 1, Rack: 1, DeviceCount: 1, Mode: topology.ModeMiddleRack},
	}

	legacy, err := g.PlanRack(req)
	require.NoError(t, err)

	req.BottomSort = "top_down"
	req.TopSort = "top_down"
	canonical, err := g.PlanRack(req)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(canonical, legacy))
}

func Test_RoleWithoutStrategyFails(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg.Strategies, topology.RoleToR)
	g := testGenerator(t, cfg)

	_, err := g.PlanRack(RackRequest{
		Name:       "rack-01",
		BottomRole: topology.RoleToR,
		Bottom:     torUplinks("tor-01", 1, "swp49"),
		Top:        leafDownlinks("leaf-01", 1, "Ethernet1/1"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, topology.ErrConfig)
}

func Test_PlanRacksKeepsRequestOrder(t *testing.T) {
	g := testGenerator(t, DefaultConfig())

	reqs := make([]RackRequest, 0, 8)
	for i := 1; i <= 8; i++ {
		reqs = append(reqs, RackRequest{
			Name:       fmt.Sprintf("rack-%02d", i),
			BottomRole: topology.RoleToR,
			Position:   topology.Position{Row: 1, Rack: i, DeviceCount: 1, Mode: topology.ModeMiddleRack},
			Bottom:     torUplinks(fmt.Sprintf("tor-%02d", i), 1, "swp49"),
			Top:        leafDownlinks("leaf-01", 1, "Ethernet1/1", "Ethernet1/2"),
		})
	}

	plans, err := g.PlanRacks(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, plans, 8)

	for i, plan := range plans {
		require.Len(t, plan, 1)
		assert.Equal(t, fmt.Sprintf("tor-%02d", i+1), plan[0].Bottom.Device)
	}
}

func Test_PlanRacksFailsFast(t *testing.T) {
	g := testGenerator(t, DefaultConfig())

	reqs := []RackRequest{
		{
			Name:       "rack-ok",
			BottomRole: topology.RoleToR,
			Bottom:     torUplinks("tor-01", 1, "swp49"),
			Top:        leafDownlinks("leaf-01", 1, "Ethernet1/1"),
			Position:   topology.Position{Row: 1, Rack: 1, DeviceCount: 1, Mode: topology.ModeMiddleRack},
		},
		{
			Name:       "rack-bad",
			BottomRole: topology.RoleToR,
			Strategy:   "diagonal",
			Bottom:     torUplinks("tor-02", 2, "swp49"),
			Top:        leafDownlinks("leaf-01", 1, "Ethernet1/1"),
		},
	}

	_, err := g.PlanRacks(context.Background(), reqs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rack-bad")
}

func Test_NewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategies[topology.RoleLeaf] = "diagonal"

	_, err := New(cfg, WithLog(zap.NewNop().Sugar()))
	require.Error(t, err)
	assert.ErrorIs(t, err, topology.ErrConfig)

	cfg = DefaultConfig()
	cfg.Selectors = map[topology.DeviceRole]SelectorConfig{
		topology.RoleToR: {Patterns: []string{"[unclosed"}},
	}

	_, err = New(cfg, WithLog(zap.NewNop().Sugar()))
	require.Error(t, err)
	assert.ErrorIs(t, err, topology.ErrConfig)
}

func Test_NamingAndPoolPassThrough(t *testing.T) {
	g := testGenerator(t, DefaultConfig())

	name, err := g.DeviceName(naming.Request{
		Prefix:    "dc1",
		Role:      topology.RoleSpine,
		Index:     2,
		Hierarchy: []int{1},
	})
	require.NoError(t, err)
	assert.Equal(t, "dc1-spine-02", name)

	sizes, err := g.PoolSizes(pool.Dimensions{
		SpinesPerPod: 4,
		LeafsPerPod:  12,
		Scope:        pool.ScopePod,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, sizes[pool.PoolTechnical])
}

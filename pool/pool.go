// Package pool computes address-pool prefix lengths for fabric and
// pod provisioning from topology dimension counts. Closed-form
// arithmetic only: the same dimensions always produce the same sizes.
package pool

import (
	"fmt"
	"math/bits"

	"github.com/t0m3kz/infrahub-demo-sub000/topology"
)

// Scope selects whether pools are dimensioned across the whole fabric
// or within one pod.
type Scope string

const (
	ScopeFabric Scope = "fabric"
	ScopePod    Scope = "pod"
)

// Family is the address family the prefixes are carved from.
type Family string

const (
	FamilyIPv4 Family = "ipv4"
	FamilyIPv6 Family = "ipv6"
)

// Bits returns the family's address width. The zero value counts as
// IPv4.
func (f Family) Bits() int {
	if f == FamilyIPv6 {
		return 128
	}
	return 32
}

// Name identifies one address pool.
type Name string

const (
	PoolManagement         Name = "management"
	PoolTechnical          Name = "technical"
	PoolLoopback           Name = "loopback"
	PoolSuperSpineLoopback Name = "superspine-loopback"
)

// Dimensions are the maximum device counts the pools must accommodate.
type Dimensions struct {
	SuperSpines  int    `yaml:"max_superspines"`
	Pods         int    `yaml:"max_pods"`
	SpinesPerPod int    `yaml:"max_spines_per_pod"`
	LeafsPerPod  int    `yaml:"max_leafs_per_pod"`
	Scope        Scope  `yaml:"scope"`
	Family       Family `yaml:"family"`
}

// Profile tunes the sizing formulas. The defaults match standard
// fabric provisioning.
type Profile struct {
	// ManagementReserve is the number of management hosts reserved on
	// top of the device count (gateway, management server).
	ManagementReserve int `yaml:"management_reserve"`
}

// DefaultProfile returns the default sizing profile.
func DefaultProfile() *Profile {
	return &Profile{ManagementReserve: 2}
}

// Size computes the pool prefix lengths for dim with the default
// profile.
func Size(dim Dimensions) (map[Name]int, error) {
	return DefaultProfile().Size(dim)
}

// Size computes the pool prefix lengths for dim. The fabric scope
// yields management, technical, loopback and superspine-loopback
// pools; the pod scope only technical and loopback. An unknown scope
// is a configuration error.
func (p *Profile) Size(dim Dimensions) (map[Name]int, error) {
	width := dim.Family.Bits()

	switch dim.Scope {
	case ScopeFabric:
		mgmtHosts := dim.LeafsPerPod*dim.Pods + dim.SpinesPerPod*dim.Pods + dim.SuperSpines + p.ManagementReserve

		// Every point-to-point link burns an address pair.
		p2pHosts := dim.Pods * dim.SpinesPerPod * dim.LeafsPerPod * 2

		// Loopback growth is dominated by whichever is larger: the raw
		// device count or a full per-pod reservation for every pod.
		devices := dim.SuperSpines + dim.Pods*(dim.SpinesPerPod+dim.LeafsPerPod)
		perPod := 1 << hostBits(dim.SpinesPerPod+dim.LeafsPerPod)
		loopHosts := max(devices, perPod*dim.Pods)

		return map[Name]int{
			PoolManagement:         prefixLen(width, mgmtHosts),
			PoolTechnical:          prefixLen(width, p2pHosts),
			PoolLoopback:           prefixLen(width, loopHosts),
			PoolSuperSpineLoopback: prefixLen(width, dim.SuperSpines*2),
		}, nil

	case ScopePod:
		p2pHosts := dim.LeafsPerPod * dim.SpinesPerPod * 2
		loopHosts := dim.SpinesPerPod + dim.LeafsPerPod

		return map[Name]int{
			PoolTechnical: prefixLen(width, p2pHosts),
			PoolLoopback:  prefixLen(width, loopHosts),
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown pool scope %q", topology.ErrConfig, dim.Scope)
	}
}

// hostBits returns the number of host bits needed to address n hosts:
// the smallest b with 2^b >= n.
func hostBits(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// prefixLen converts a host demand into a prefix length, clamped into
// the family's width.
func prefixLen(width, hosts int) int {
	pl := width - hostBits(hosts)
	if pl < 1 {
		pl = 1
	}
	if pl > width {
		pl = width
	}

	return pl
}

// Package topology holds the shared domain types consumed by the
// planning packages: interface descriptors resolved from the external
// source of truth, tier roles, deployment modes and aggregate state.
//
// Everything here is plain immutable input data. The planners never
// mutate an Interface and never write anything back.
package topology

// DeviceRole is the tier a device belongs to.
type DeviceRole string

const (
	RoleSuperSpine DeviceRole = "superspine"
	RoleSpine      DeviceRole = "spine"
	RoleLeaf       DeviceRole = "leaf"
	RoleToR        DeviceRole = "tor"
	RoleEndpoint   DeviceRole = "endpoint"
)

// InterfaceRole is the function a port plays on its device.
type InterfaceRole string

const (
	IfaceUplink     InterfaceRole = "uplink"
	IfaceDownlink   InterfaceRole = "downlink"
	IfaceCustomer   InterfaceRole = "customer"
	IfaceAccess     InterfaceRole = "access"
	IfaceManagement InterfaceRole = "management"
	IfaceConsole    InterfaceRole = "console"
)

// DeploymentMode describes how ToR switches reach the aggregation tier.
type DeploymentMode string

const (
	// ModeToR wires ToRs directly to spines.
	ModeToR DeploymentMode = "tor"
	// ModeMiddleRack wires ToRs to leafs co-located in a dedicated
	// network rack.
	ModeMiddleRack DeploymentMode = "middle_rack"
	// ModeMixed has both patterns coexisting by row.
	ModeMixed DeploymentMode = "mixed"
)

// Interface describes one port of one device as resolved from the
// topology store. The orchestrator applies its status policy (active
// devices, free ports) before handing interfaces to the planners.
type Interface struct {
	// ID is the opaque store identity of the interface.
	ID string
	// Name is the free-form port label, e.g. "Ethernet1/2".
	Name string
	// Device is the display name of the owning device.
	Device string
	// DeviceRole is the tier of the owning device.
	DeviceRole DeviceRole
	// DeviceIndex is the owning device's 1-based numeric index within
	// its tier. Zero means the index is not set.
	DeviceIndex int
	// Role is the interface role tag.
	Role InterfaceRole
	// Speed is the free-form medium tag, e.g. "100gbase-x-qsfp28".
	Speed string
	// Connected reports whether the port already carries a cable. The
	// cabling planner never consults it: identical topology shapes
	// produce identical plans and the persistence layer upserts.
	Connected bool
}

// Position locates a rack within the fabric for offset calculation.
type Position struct {
	// Row is the 1-based row index.
	Row int
	// Rack is the 1-based rack index within the row.
	Rack int
	// DeviceCount is the number of devices at the tier being wired.
	DeviceCount int
	// Mode is the deployment mode of the surrounding topology.
	Mode DeploymentMode
}

// AggregateKind is the level of a topology aggregate.
type AggregateKind string

const (
	KindFabric AggregateKind = "fabric"
	KindPod    AggregateKind = "pod"
	KindRack   AggregateKind = "rack"
)

// Aggregate is a snapshot of one topology unit's persisted cascade
// state. Fingerprints are opaque tokens owned by the external store.
type Aggregate struct {
	Kind AggregateKind
	// Name identifies the aggregate to the orchestrator.
	Name string
	// Fingerprint is the aggregate's current change token.
	Fingerprint string
	// Row is the 1-based row index for rack aggregates. Mixed-mode
	// cascade eligibility is scoped to one row.
	Row int
	// HasLeafs marks the rack designated to carry its row's leaf
	// devices (the middle rack), whether or not any are present yet.
	HasLeafs bool
	// LeafCount is the number of leaf devices currently in the
	// aggregate. ToR racks only inherit from a middle rack that
	// already holds at least one.
	LeafCount int
}

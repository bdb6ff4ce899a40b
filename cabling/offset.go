package cabling

import (
	"github.com/t0m3kz/infrahub-demo-sub000/topology"
)

// DefaultMaxDevicesPerRow is the fixed-width port band reserved per
// row in the tor deployment mode.
const DefaultMaxDevicesPerRow = 8

// Offset computes the starting index into the shared top-tier port
// space for a rack at the given position, so racks and rows sharing
// one spine or leaf pool never collide. Pure arithmetic: reruns over
// an unchanged topology re-derive the same offset and never shift
// already-created connections.
//
// maxPerRow bounds the devices of one row in tor mode; values <= 0
// fall back to DefaultMaxDevicesPerRow.
func Offset(pos topology.Position, role topology.DeviceRole, maxPerRow int) int {
	if maxPerRow <= 0 {
		maxPerRow = DefaultMaxDevicesPerRow
	}

	offset := 0
	switch {
	case pos.Mode == topology.ModeMiddleRack && role == topology.RoleToR:
		// ToRs wire to leafs in the same rack, nothing is shared.
		offset = 0
	case pos.Mode == topology.ModeMixed && role == topology.RoleToR:
		offset = (pos.Rack - 1) * pos.DeviceCount
	case (pos.Mode == topology.ModeMixed || pos.Mode == topology.ModeMiddleRack) && role == topology.RoleLeaf:
		offset = (pos.Row - 1) * pos.DeviceCount
	case pos.Mode == topology.ModeToR && role == topology.RoleToR:
		// Reserve a fixed-width band per row, then advance within the
		// row by rack position.
		offset = maxPerRow*(pos.Row-1) + pos.DeviceCount*(pos.Rack-1)
	}

	return max(offset, 0)
}

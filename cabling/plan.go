package cabling

import (
	"fmt"

	"github.com/t0m3kz/infrahub-demo-sub000/topology"
)

// Link is one physical cable to create between a bottom-tier and a
// top-tier interface.
type Link struct {
	Bottom topology.Interface
	Top    topology.Interface
}

// Plan is an ordered list of links. A fresh plan is produced on every
// builder invocation; merging with previously persisted links is the
// persistence layer's job.
type Plan []Link

// Validate reports the first interface identity that appears more than
// once in the plan, on either side. Strategies that wrap interface
// selection (pod, server) can legally double-book when a device
// exposes fewer ports than it has partners; callers that require
// uniqueness check here.
func (p Plan) Validate() error {
	seen := make(map[string]struct{}, len(p)*2)

	for _, link := range p {
		for _, iface := range []topology.Interface{link.Bottom, link.Top} {
			if _, ok := seen[iface.ID]; ok {
				return fmt.Errorf("interface %q on device %q is double-booked", iface.Name, iface.Device)
			}
			seen[iface.ID] = struct{}{}
		}
	}

	return nil
}

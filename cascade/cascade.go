// Package cascade decides which child topology aggregates must receive
// an updated change fingerprint after a parent's persisted state
// changed, without re-triggering children that are already up to date.
package cascade

import (
	"github.com/t0m3kz/infrahub-demo-sub000/topology"
)

// ShouldPropagate reports whether a child with the given fingerprint
// needs the parent's fingerprint. Equal fingerprints never propagate:
// that is what breaks the regenerate-notice-regenerate loop.
func ShouldPropagate(parent, child string) bool {
	return parent != child
}

// Propagation is one fingerprint write the orchestrator should
// perform on a child aggregate.
type Propagation struct {
	// Child is the name of the aggregate to update.
	Child string
	// Fingerprint is the value to write.
	Fingerprint string
}

// Propagations computes the fingerprint writes for the children of
// parent under the given deployment mode. Children are considered in
// the order given.
//
// In mixed mode eligibility is scoped to rows: each row's middle rack
// (the one designated to carry leaf devices) takes the parent's
// fingerprint directly, and the ToR-only racks of that row inherit
// the middle rack's own fingerprint instead, but only once it holds
// at least one leaf device. A ToR rack in a row without a middle rack
// receives nothing.
func Propagations(parent topology.Aggregate, mode topology.DeploymentMode, children []topology.Aggregate) []Propagation {
	out := []Propagation{}

	if mode != topology.ModeMixed {
		for _, child := range children {
			if ShouldPropagate(parent.Fingerprint, child.Fingerprint) {
				out = append(out, Propagation{Child: child.Name, Fingerprint: parent.Fingerprint})
			}
		}
		return out
	}

	middles := make(map[int]*topology.Aggregate, len(children))
	for i := range children {
		child := &children[i]
		if child.HasLeafs {
			if _, ok := middles[child.Row]; !ok {
				middles[child.Row] = child
			}
		}
	}

	for i := range children {
		child := &children[i]

		if child.HasLeafs {
			if middles[child.Row] == child && ShouldPropagate(parent.Fingerprint, child.Fingerprint) {
				out = append(out, Propagation{Child: child.Name, Fingerprint: parent.Fingerprint})
			}
			continue
		}

		// ToR racks follow their own row's middle rack, not the pod,
		// and only after that rack actually carries leafs.
		middle, ok := middles[child.Row]
		if !ok || middle.LeafCount == 0 {
			continue
		}
		if ShouldPropagate(middle.Fingerprint, child.Fingerprint) {
			out = append(out, Propagation{Child: child.Name, Fingerprint: middle.Fingerprint})
		}
	}

	return out
}

// Package naming renders canonical device names from a prefix, a role
// tag, a numeric index and the device's position in the topology
// hierarchy, under a pluggable naming convention.
package naming

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t0m3kz/infrahub-demo-sub000/topology"
)

// Strategy selects the naming convention.
type Strategy string

const (
	StrategyStandard     Strategy = "standard"
	StrategyHierarchical Strategy = "hierarchical"
	StrategyFlat         Strategy = "flat"
	StrategyCustom       Strategy = "custom"
)

// Request carries everything needed to name one device. Pure input,
// no state.
type Request struct {
	// Prefix is the site or fabric prefix, e.g. "dc1".
	Prefix string
	// Role is the device role tag.
	Role topology.DeviceRole
	// Index is the 1-based device index within its tier.
	Index int
	// Hierarchy is the ordered list of hierarchy indexes, e.g.
	// [dc, pod, rack].
	Hierarchy []int
}

// Formatter renders a name for the custom strategy.
type Formatter func(Request) string

// Profile configures the naming convention. Loadable from YAML; the
// custom Formatter is supplied programmatically.
type Profile struct {
	Strategy Strategy `yaml:"strategy"`
	// Separator joins the parts of hierarchical names.
	Separator string `yaml:"separator"`
	// PadWidth is the zero-pad width of the device index.
	PadWidth int `yaml:"pad_width"`

	Formatter Formatter `yaml:"-"`
}

// DefaultProfile returns the standard convention with "-" separator
// and two-digit indexes.
func DefaultProfile() *Profile {
	return &Profile{
		Strategy:  StrategyStandard,
		Separator: "-",
		PadWidth:  2,
	}
}

// Format renders the device name for req under the profile's
// strategy. Unknown strategies and a custom strategy without a
// formatter are configuration errors.
func (p *Profile) Format(req Request) (string, error) {
	switch p.Strategy {
	case StrategyStandard:
		return p.formatStandard(req), nil
	case StrategyHierarchical:
		return p.formatHierarchical(req), nil
	case StrategyFlat:
		return p.formatFlat(req), nil
	case StrategyCustom:
		if p.Formatter == nil {
			return "", fmt.Errorf("%w: custom naming strategy requires a formatter", topology.ErrConfig)
		}
		return p.Formatter(req), nil
	default:
		return "", fmt.Errorf("%w: unknown naming strategy %q", topology.ErrConfig, p.Strategy)
	}
}

func (p *Profile) paddedIndex(req Request) string {
	return fmt.Sprintf("%0*d", p.PadWidth, req.Index)
}

// formatStandard renders "{prefix}-{role}-{index}" when a single
// hierarchy level is given, and inserts the dotted hierarchy between
// a doubled prefix otherwise.
func (p *Profile) formatStandard(req Request) string {
	if len(req.Hierarchy) <= 1 {
		return fmt.Sprintf("%s-%s-%s", req.Prefix, req.Role, p.paddedIndex(req))
	}

	dotted := make([]string, 0, len(req.Hierarchy))
	for _, h := range req.Hierarchy {
		dotted = append(dotted, strconv.Itoa(h))
	}

	return fmt.Sprintf("%s-%s-%s-%s-%s",
		req.Prefix, req.Prefix, strings.Join(dotted, "."), req.Role, p.paddedIndex(req))
}

func (p *Profile) formatHierarchical(req Request) string {
	parts := make([]string, 0, len(req.Hierarchy)+3)
	parts = append(parts, req.Prefix)
	for _, h := range req.Hierarchy {
		parts = append(parts, strconv.Itoa(h))
	}
	parts = append(parts, string(req.Role), strconv.Itoa(req.Index))

	return strings.Join(parts, p.Separator)
}

func (p *Profile) formatFlat(req Request) string {
	var sb strings.Builder
	sb.WriteString(req.Prefix)
	for _, h := range req.Hierarchy {
		sb.WriteString(strconv.Itoa(h))
	}
	sb.WriteString(string(req.Role))
	sb.WriteString(p.paddedIndex(req))

	return sb.String()
}

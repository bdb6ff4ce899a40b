package generator

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/t0m3kz/infrahub-demo-sub000/topology"
)

// selector is a compiled SelectorConfig.
type selector struct {
	roles map[topology.InterfaceRole]struct{}
	globs []glob.Glob
}

func compileSelector(cfg SelectorConfig) (*selector, error) {
	s := &selector{}

	if len(cfg.Roles) > 0 {
		s.roles = make(map[topology.InterfaceRole]struct{}, len(cfg.Roles))
		for _, role := range cfg.Roles {
			s.roles[role] = struct{}{}
		}
	}

	for _, pattern := range cfg.Patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: bad interface pattern %q: %v", topology.ErrConfig, pattern, err)
		}
		s.globs = append(s.globs, g)
	}

	return s, nil
}

func (s *selector) match(iface topology.Interface) bool {
	if s.roles != nil {
		if _, ok := s.roles[iface.Role]; !ok {
			return false
		}
	}

	if len(s.globs) == 0 {
		return true
	}
	for _, g := range s.globs {
		if g.Match(iface.Name) {
			return true
		}
	}

	return false
}

package core

import (
	"github.com/encodeous/bestpath/state"
)

// ImportPolicy assigns local preference to received advertisements
type ImportPolicy struct {
	rules    map[state.AsId]uint32
	fallback uint32
}

func NewImportPolicy(cfg state.RouterCfg) *ImportPolicy {
	p := &ImportPolicy{
		rules:    make(map[state.AsId]uint32),
		fallback: cfg.DefaultLocalPref,
	}
	if p.fallback == 0 {
		p.fallback = state.DefaultLocalPref
	}
	for _, rule := range cfg.Policy {
		if _, ok := p.rules[rule.Neighbour]; ok {
			continue // first rule wins
		}
		p.rules[rule.Neighbour] = rule.LocalPref
	}
	return p
}

// LocalPref resolves the preference for adv: an explicit value on the advertisement,
// then a rule matching the advertising neighbour, then the default.
func (p *ImportPolicy) LocalPref(adv state.Advertisement) uint32 {
	if adv.LocalPref != nil {
		return *adv.LocalPref
	}
	if neigh, ok := adv.Neighbour(); ok {
		if lp, ok := p.rules[neigh]; ok {
			return lp
		}
	}
	return p.fallback
}

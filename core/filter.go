package core

import (
	"fmt"
	"net/netip"

	"github.com/encodeous/bestpath/state"
	"github.com/gaissmai/bart"
)

// Filter checks advertisements before they reach selection. A zero ValidationCfg accepts everything.
type Filter struct {
	self state.AsId
	cfg  state.ValidationCfg
	deny bart.Table[netip.Prefix]
}

func NewFilter(self state.AsId, cfg state.ValidationCfg) *Filter {
	f := &Filter{
		self: self,
		cfg:  cfg,
	}
	for _, prefix := range cfg.DenyPrefixes {
		f.deny.Insert(prefix, prefix.Masked())
	}
	return f
}

func isReservedAs(as state.AsId) bool {
	return as == 0 || as == state.AsTrans || as == 65535 || as == 4294967295
}

// Check returns a non-empty reason if adv must be rejected as invalid
func (f *Filter) Check(adv state.Advertisement) string {
	if f.cfg.RejectAsLoops && adv.Path.Contains(f.self) {
		return fmt.Sprintf("AS path %s already contains AS%d", adv.Path, f.self)
	}
	if f.cfg.RejectReservedAs {
		for _, as := range adv.Path {
			if isReservedAs(as) {
				return fmt.Sprintf("AS path %s contains reserved AS%d", adv.Path, as)
			}
		}
	}
	if f.cfg.MaxPathLen > 0 && len(adv.Path)+1 > f.cfg.MaxPathLen {
		return fmt.Sprintf("AS path length %d exceeds %d", len(adv.Path)+1, f.cfg.MaxPathLen)
	}
	if len(f.cfg.DenyPrefixes) > 0 {
		prefix, err := netip.ParsePrefix(string(adv.Destination))
		if err == nil {
			if denied, ok := f.deny.LookupPrefix(prefix); ok {
				return fmt.Sprintf("destination %s is covered by denied prefix %s", adv.Destination, denied)
			}
		}
	}
	return ""
}

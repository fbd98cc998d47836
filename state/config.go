package state

import (
	"fmt"
	"net/netip"
	"os"

	"github.com/goccy/go-yaml"
)

// PolicyRule assigns a local preference to every route learned from a neighbouring AS
type PolicyRule struct {
	Neighbour AsId   `yaml:"neighbour"`
	LocalPref uint32 `yaml:"local_pref"`
}

// ValidationCfg enables checks that reject advertisements before selection. All checks are off by default.
type ValidationCfg struct {
	RejectAsLoops    bool           `yaml:"reject_as_loops,omitempty"`    // reject paths that already contain our own AS
	RejectReservedAs bool           `yaml:"reject_reserved_as,omitempty"` // reject paths containing AS 0, AS_TRANS or the last AS numbers
	MaxPathLen       int            `yaml:"max_path_len,omitempty"`       // maximum installed path length, 0 is unlimited
	DenyPrefixes     []netip.Prefix `yaml:"deny_prefixes,omitempty"`      // destinations covered by these prefixes are rejected
}

func (v ValidationCfg) Enabled() bool {
	return v.RejectAsLoops || v.RejectReservedAs || v.MaxPathLen > 0 || len(v.DenyPrefixes) > 0
}

// RouterCfg represents a single router and its import policy
type RouterCfg struct {
	Name             string        `yaml:"name"`
	As               AsId          `yaml:"as"`
	DefaultLocalPref uint32        `yaml:"default_local_pref,omitempty"` // 0 means DefaultLocalPref
	Policy           []PolicyRule  `yaml:"policy,omitempty"`
	Validation       ValidationCfg `yaml:"validation,omitempty"`
	LogPath          string        `yaml:"log_path,omitempty"` // if not empty, decisions are also written to this file
}

// ScenarioCfg is a router together with the advertisements it receives, in order
type ScenarioCfg struct {
	Router         RouterCfg       `yaml:"router"`
	Advertisements []Advertisement `yaml:"advertisements"`
}

func ParseScenario(data []byte) (*ScenarioCfg, error) {
	var cfg ScenarioCfg
	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func ReadScenario(path string) (*ScenarioCfg, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseScenario(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func WriteScenario(path string, cfg *ScenarioCfg) error {
	bytes, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0600)
}

// ExampleScenario is the classic policy example: AS300 learns 10.1.0.0/16 over a short path via AS200
// and a longer path via AS400, and prefers the latter because of local policy.
func ExampleScenario() *ScenarioCfg {
	return &ScenarioCfg{
		Router: RouterCfg{
			Name: "r3",
			As:   300,
			Policy: []PolicyRule{
				{Neighbour: 400, LocalPref: 200},
			},
		},
		Advertisements: []Advertisement{
			{
				Destination: "10.1.0.0/16",
				Path:        AsPath{200, 100},
				From:        "r2",
			},
			{
				Destination: "10.1.0.0/16",
				Path:        AsPath{400, 500, 100},
				From:        "r4",
			},
		},
	}
}

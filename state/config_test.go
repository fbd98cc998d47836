package state

import (
	"net/netip"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	input := `
router:
  name: r3
  as: 300
  default_local_pref: 80
  policy:
    - neighbour: 400
      local_pref: 200
  validation:
    reject_as_loops: true
    max_path_len: 8
    deny_prefixes:
      - 192.168.0.0/16
advertisements:
  - destination: 10.1.0.0/16
    path: [200, 100]
    from: r2
  - destination: 10.1.0.0/16
    path: [400, 500, 100]
    local_pref: 150
`
	cfg, err := ParseScenario([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, "r3", cfg.Router.Name)
	assert.Equal(t, AsId(300), cfg.Router.As)
	assert.Equal(t, uint32(80), cfg.Router.DefaultLocalPref)
	assert.Equal(t, []PolicyRule{{Neighbour: 400, LocalPref: 200}}, cfg.Router.Policy)
	assert.True(t, cfg.Router.Validation.RejectAsLoops)
	assert.False(t, cfg.Router.Validation.RejectReservedAs)
	assert.Equal(t, 8, cfg.Router.Validation.MaxPathLen)
	assert.Equal(t, []netip.Prefix{netip.MustParsePrefix("192.168.0.0/16")}, cfg.Router.Validation.DenyPrefixes)
	assert.True(t, cfg.Router.Validation.Enabled())

	require.Len(t, cfg.Advertisements, 2)
	assert.Equal(t, Destination("10.1.0.0/16"), cfg.Advertisements[0].Destination)
	assert.Equal(t, AsPath{200, 100}, cfg.Advertisements[0].Path)
	assert.Nil(t, cfg.Advertisements[0].LocalPref)
	assert.Equal(t, "r2", cfg.Advertisements[0].From)
	require.NotNil(t, cfg.Advertisements[1].LocalPref)
	assert.Equal(t, uint32(150), *cfg.Advertisements[1].LocalPref)
}

func TestParseScenario_Invalid(t *testing.T) {
	_, err := ParseScenario([]byte("router: [1, 2"))
	assert.Error(t, err)
}

func TestWriteReadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, WriteScenario(path, ExampleScenario()))

	cfg, err := ReadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, ExampleScenario(), cfg)
	assert.False(t, cfg.Router.Validation.Enabled())
}

func TestReadScenario_Missing(t *testing.T) {
	_, err := ReadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

package render

import (
	"testing"

	"github.com/encodeous/bestpath/state"
	"github.com/stretchr/testify/assert"
)

func exampleDecisions() ([]state.Decision, []state.TableEntry) {
	first := state.Route{Path: state.AsPath{300, 200, 100}, LocalPref: 100}
	second := state.Route{Path: state.AsPath{300, 400, 500, 100}, LocalPref: 200}
	decisions := []state.Decision{
		{Seq: 1, Kind: state.Installed, Destination: "10.1.0.0/16", Candidate: first},
		{Seq: 2, Kind: state.Updated, Destination: "10.1.0.0/16", Candidate: second, Incumbent: &first},
	}
	table := []state.TableEntry{{Destination: "10.1.0.0/16", Route: second}}
	return decisions, table
}

func TestDecision(t *testing.T) {
	decisions, _ := exampleDecisions()
	assert.Equal(t, "[r3] installed new route for 10.1.0.0/16: [300 200 100] (lp: 100)", Decision("r3", decisions[0]))
	assert.Equal(t, "[r3] route UPDATED for 10.1.0.0/16: [300 400 500 100] (lp: 200) (beat [300 200 100], lp: 100)", Decision("r3", decisions[1]))

	rejected := state.Decision{
		Kind:        state.Rejected,
		Destination: "10.1.0.0/16",
		Candidate:   decisions[0].Candidate,
		Incumbent:   &decisions[1].Candidate,
	}
	assert.Equal(t, "[r3] route ignored for 10.1.0.0/16: [300 200 100] (lp: 100) (kept [300 400 500 100], lp: 200)", Decision("r3", rejected))

	invalid := state.Decision{
		Kind:        state.RejectedInvalid,
		Destination: "10.1.0.0/16",
		Candidate:   state.Route{Path: state.AsPath{300, 300}, LocalPref: 100},
		Reason:      "loop",
	}
	assert.Equal(t, "[r3] invalid route for 10.1.0.0/16: [300 300] (lp: 100): loop", Decision("r3", invalid))
}

func TestTable(t *testing.T) {
	_, table := exampleDecisions()
	assert.Equal(t, "--- Route Table: r3 (AS300) ---\n  (empty table)\n", Table("r3", 300, nil))
	assert.Equal(t, "--- Route Table: r3 (AS300) ---\n  10.1.0.0/16 -> path: [300 400 500 100] (lp: 200)\n", Table("r3", 300, table))
}

func TestDot(t *testing.T) {
	decisions, table := exampleDecisions()
	assert.Equal(t, `digraph "r3" {
  rankdir=TB;
  "AS100" [label="AS100\n10.1.0.0/16"];
  "AS200" [label="AS200"];
  "AS300" [label="AS300\n(r3)"];
  "AS400" [label="AS400"];
  "AS500" [label="AS500"];
  "AS200" -> "AS100" [color=red, penwidth=1.5];
  "AS300" -> "AS200" [color=red, penwidth=1.5];
  "AS300" -> "AS400" [color=green, penwidth=3.0];
  "AS400" -> "AS500" [color=green, penwidth=3.0];
  "AS500" -> "AS100" [color=green, penwidth=3.0];
}
`, Dot("r3", 300, table, decisions))
}

func TestDotEmpty(t *testing.T) {
	assert.Equal(t, "digraph \"r3\" {\n  rankdir=TB;\n  \"AS300\" [label=\"AS300\\n(r3)\"];\n}\n", Dot("r3", 300, nil, nil))
}

func TestDotSkipsInvalidAdvertisements(t *testing.T) {
	decisions, table := exampleDecisions()
	want := Dot("r3", 300, table, decisions)

	looped := state.Route{Path: state.AsPath{300, 200, 300, 100}, LocalPref: 100}
	decisions = append(decisions, state.Decision{
		Seq:         3,
		Kind:        state.RejectedInvalid,
		Destination: "10.1.0.0/16",
		Candidate:   looped,
		Incumbent:   &table[0].Route,
		Reason:      "path contains own AS 300",
	})
	got := Dot("r3", 300, table, decisions)
	assert.Equal(t, want, got)
	assert.NotContains(t, got, `"AS200" -> "AS300"`)
	assert.NotContains(t, got, `"AS300" -> "AS100"`)
}

func TestDotEscapesLabels(t *testing.T) {
	route := state.Route{Path: state.AsPath{300, 1}, LocalPref: 100}
	dst := state.Destination(`a"b\c`)
	decisions := []state.Decision{{Seq: 1, Kind: state.Installed, Destination: dst, Candidate: route}}
	table := []state.TableEntry{{Destination: dst, Route: route}}
	assert.Equal(t, `digraph "r3" {
  rankdir=TB;
  "AS1" [label="AS1\na\"b\\c"];
  "AS300" [label="AS300\n(r3)"];
  "AS300" -> "AS1" [color=green, penwidth=3.0];
}
`, Dot("r3", 300, table, decisions))
}

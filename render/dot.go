package render

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/encodeous/bestpath/state"
)

type edge struct {
	from, to state.AsId
}

type edgeState int

const (
	edgeUnseen edgeState = iota
	edgeRejected
	edgeChosen
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// dotEscape makes s safe to place inside a double quoted DOT string
func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}

func pathEdges(p state.AsPath, visit func(e edge)) {
	for i := 0; i+1 < len(p); i++ {
		visit(edge{p[i], p[i+1]})
	}
}

// Dot renders the topology implied by every decision as a Graphviz digraph. Edges are directed from
// the router towards the origin. Edges on an installed path are green, edges only seen on losing
// candidates are red. Invalid advertisements were never candidates and draw nothing.
func Dot(name string, self state.AsId, table []state.TableEntry, decisions []state.Decision) string {
	edges := make(map[edge]edgeState)
	origins := make(map[state.AsId][]state.Destination)

	mark := func(p state.AsPath, st edgeState) {
		pathEdges(p, func(e edge) {
			if edges[e] < st {
				edges[e] = st
			}
		})
	}
	for _, d := range decisions {
		if d.Kind == state.RejectedInvalid {
			continue
		}
		mark(d.Candidate.Path, edgeRejected)
		if d.Incumbent != nil {
			mark(d.Incumbent.Path, edgeRejected)
		}
		if len(d.Candidate.Path) > 0 {
			origin := d.Candidate.Path[len(d.Candidate.Path)-1]
			if !slices.Contains(origins[origin], d.Destination) {
				origins[origin] = append(origins[origin], d.Destination)
			}
		}
	}
	for _, e := range table {
		mark(e.Route.Path, edgeChosen)
	}

	nodes := []state.AsId{self}
	for e := range edges {
		nodes = append(nodes, e.from, e.to)
	}
	slices.Sort(nodes)
	nodes = slices.Compact(nodes)

	sortedEdges := make([]edge, 0, len(edges))
	for e := range edges {
		sortedEdges = append(sortedEdges, e)
	}
	slices.SortFunc(sortedEdges, func(a, b edge) int {
		if a.from != b.from {
			return cmp.Compare(a.from, b.from)
		}
		return cmp.Compare(a.to, b.to)
	})

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("digraph \"%s\" {\n", dotEscape(name)))
	sb.WriteString("  rankdir=TB;\n")
	for _, n := range nodes {
		label := fmt.Sprintf("AS%d", n)
		if n == self {
			label += fmt.Sprintf("\\n(%s)", dotEscape(name))
		}
		for _, dst := range origins[n] {
			label += fmt.Sprintf("\\n%s", dotEscape(string(dst)))
		}
		sb.WriteString(fmt.Sprintf("  \"AS%d\" [label=\"%s\"];\n", n, label))
	}
	for _, e := range sortedEdges {
		if edges[e] == edgeChosen {
			sb.WriteString(fmt.Sprintf("  \"AS%d\" -> \"AS%d\" [color=green, penwidth=3.0];\n", e.from, e.to))
		} else {
			sb.WriteString(fmt.Sprintf("  \"AS%d\" -> \"AS%d\" [color=red, penwidth=1.5];\n", e.from, e.to))
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

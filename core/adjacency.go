// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: Construction of the immutable adjacency model and its read-only queries.
// Policy:
//   - Every input node seeds an empty neighbor set before edges are applied.
//   - Edges touching unknown nodes, self-loops and repeated pairs are skipped.
//   - No method mutates the model after BuildAdjacency returns.

package core

// BuildAdjacency creates the adjacency model for a snapshot.
//
// Implementation:
//   - Stage 1: Seed every node id with an empty neighbor list (isolated nodes survive).
//   - Stage 2: Apply each edge to both endpoints, skipping edges that would break
//     the simple-graph invariant.
//
// Repeated node ids are collapsed to their first occurrence; callers are expected
// to pass unique ids (see Validate).
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func BuildAdjacency(nodes []string, edges []Edge) *Adjacency {
	a := &Adjacency{
		nodes:     make([]string, 0, len(nodes)),
		neighbors: make(map[string][]string, len(nodes)),
		linked:    make(map[string]map[string]struct{}, len(nodes)),
	}

	for _, id := range nodes {
		if _, seen := a.linked[id]; seen {
			continue
		}
		a.nodes = append(a.nodes, id)
		a.neighbors[id] = nil
		a.linked[id] = make(map[string]struct{})
	}

	for _, e := range edges {
		a.link(e.From, e.To)
	}

	return a
}

// FromNodes is BuildAdjacency over rich Node values; attributes are ignored.
func FromNodes(nodes []Node, edges []Edge) *Adjacency {
	return BuildAdjacency(IDs(nodes), edges)
}

// link records an undirected edge between u and v if it keeps the graph simple.
func (a *Adjacency) link(u, v string) {
	if u == v {
		return
	}
	us, ok := a.linked[u]
	if !ok {
		return
	}
	vs, ok := a.linked[v]
	if !ok {
		return
	}
	if _, dup := us[v]; dup {
		return
	}

	us[v] = struct{}{}
	vs[u] = struct{}{}
	a.neighbors[u] = append(a.neighbors[u], v)
	a.neighbors[v] = append(a.neighbors[v], u)
	a.edges++
}

// Nodes returns a copy of the node ids in insertion order.
// Complexity: O(V).
func (a *Adjacency) Nodes() []string {
	out := make([]string, len(a.nodes))
	copy(out, a.nodes)
	return out
}

// Len reports the number of nodes.
func (a *Adjacency) Len() int {
	return len(a.nodes)
}

// Has reports whether id is a node of the model.
func (a *Adjacency) Has(id string) bool {
	_, ok := a.linked[id]
	return ok
}

// Neighbors returns a copy of id's neighbors in link order, or nil if id is unknown.
// Complexity: O(d).
func (a *Adjacency) Neighbors(id string) []string {
	nbrs := a.neighbors[id]
	if nbrs == nil {
		return nil
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)
	return out
}

// Degree returns the number of neighbors of id; unknown ids have degree 0.
func (a *Adjacency) Degree(id string) int {
	return len(a.neighbors[id])
}

// Adjacent reports whether u and v share an edge.
func (a *Adjacency) Adjacent(u, v string) bool {
	_, ok := a.linked[u][v]
	return ok
}

// EdgeCount returns the number of undirected edges, each counted once.
func (a *Adjacency) EdgeCount() int {
	return a.edges
}

// Edges lists every undirected edge once, oriented from the endpoint that
// appears earlier in insertion order.
// Complexity: O(V+E).
func (a *Adjacency) Edges() []Edge {
	pos := make(map[string]int, len(a.nodes))
	for i, id := range a.nodes {
		pos[id] = i
	}

	out := make([]Edge, 0, a.edges)
	for _, u := range a.nodes {
		for _, v := range a.neighbors[u] {
			if pos[u] < pos[v] {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	return out
}

// ForEachNeighbor calls fn for every neighbor of id in link order.
// Unlike Neighbors it does not allocate; analyzers use it in hot loops.
func (a *Adjacency) ForEachNeighbor(id string, fn func(nbr string)) {
	for _, v := range a.neighbors[id] {
		fn(v)
	}
}

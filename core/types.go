// Package core defines the Node, Edge and Adjacency types shared by every analyzer,
// along with the sentinel errors reported by Validate.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrDuplicateNode  - the same node ID appears twice in the node list.
//	ErrUnknownNode    - an edge references a node absent from the node list.
//	ErrSelfLoop       - an edge connects a node to itself.
//	ErrDuplicateEdge  - the same unordered pair is submitted twice.
package core

import "errors"

// Sentinel errors for snapshot validation.
var (
	// ErrEmptyNodeID indicates that a node carries an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node ID appears more than once.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrUnknownNode indicates an edge endpoint that is not in the node list.
	ErrUnknownNode = errors.New("core: edge references unknown node")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the same unordered pair was submitted twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Node is a network node as reported by a snapshot.
//
// ID uniquely identifies the node. Attrs carries arbitrary scalar metadata
// (string, integer, float or bool values) that exporters may serialize.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Attrs stores scalar metadata keyed by attribute name. It may be nil.
	Attrs map[string]any
}

// Edge is an unordered link between two node IDs.
// Edge{A,B} and Edge{B,A} denote the same connection.
type Edge struct {
	// From is one endpoint.
	From string

	// To is the other endpoint.
	To string
}

// Key returns the canonical "min-max" form of the edge, identical for both
// orientations. Hosts use it to de-duplicate peer lists.
func (e Edge) Key() string {
	a, b := e.Canonical()
	return a + "-" + b
}

// Canonical returns the endpoints ordered lexicographically.
func (e Edge) Canonical() (string, string) {
	if e.To < e.From {
		return e.To, e.From
	}
	return e.From, e.To
}

// Other returns the endpoint opposite id, and false if id is not an endpoint.
func (e Edge) Other(id string) (string, bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	}
	return "", false
}

// Adjacency maps every node ID to the set of its neighbors.
//
// nodes keeps insertion order; neighbors keeps per-node insertion order of links;
// linked mirrors neighbors as a set for O(1) adjacency tests.
type Adjacency struct {
	nodes     []string
	neighbors map[string][]string
	linked    map[string]map[string]struct{}
	edges     int
}

// IDs projects the ID of every node, preserving order.
func IDs(nodes []Node) []string {
	ids := make([]string, len(nodes))
	for i := range nodes {
		ids[i] = nodes[i].ID
	}
	return ids
}

// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Snapshot model, validation and peer-list mapping.

package snapshot

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/peertopo/core"
)

var (
	// ErrUnknownFormat is returned for formats other than JSON and YAML.
	ErrUnknownFormat = errors.New("snapshot: unknown format")

	// ErrEmptyNodeID indicates a node entry without an id.
	ErrEmptyNodeID = errors.New("snapshot: node id is empty")

	// ErrDuplicateNode indicates two node entries with the same id.
	ErrDuplicateNode = errors.New("snapshot: duplicate node id")
)

// Peer is one network node as reported in a snapshot.
type Peer struct {
	ID         string         `json:"id" yaml:"id"`
	Peers      []string       `json:"peers,omitempty" yaml:"peers,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Snapshot is a point-in-time view of the network.
type Snapshot struct {
	TakenAt *time.Time `json:"taken_at,omitempty" yaml:"taken_at,omitempty"`
	Nodes   []Peer     `json:"nodes" yaml:"nodes"`

	// Dropped counts peer references discarded by the last Graph call.
	Dropped int `json:"-" yaml:"-"`
}

// Validate checks node ids for emptiness and uniqueness.
func (s *Snapshot) Validate() error {
	seen := make(map[string]struct{}, len(s.Nodes))
	for i, p := range s.Nodes {
		if p.ID == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyNodeID, i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// Graph maps the snapshot onto engine inputs and records the number of
// discarded peer references in s.Dropped.
//
// Complexity: O(N + P) for N nodes and P peer references.
func (s *Snapshot) Graph() ([]core.Node, []core.Edge) {
	nodes := make([]core.Node, len(s.Nodes))
	known := make(map[string]struct{}, len(s.Nodes))
	for i, p := range s.Nodes {
		nodes[i] = core.Node{ID: p.ID, Attrs: p.Attributes}
		known[p.ID] = struct{}{}
	}

	var edges []core.Edge
	pairs := make(map[[2]string]struct{})
	s.Dropped = 0
	for _, p := range s.Nodes {
		for _, peer := range p.Peers {
			if _, ok := known[peer]; !ok || peer == p.ID {
				s.Dropped++
				continue
			}
			a, b := core.Edge{From: p.ID, To: peer}.Canonical()
			key := [2]string{a, b}
			if _, dup := pairs[key]; dup {
				continue
			}
			pairs[key] = struct{}{}
			edges = append(edges, core.Edge{From: a, To: b})
		}
	}
	return nodes, edges
}

// FromGraph builds a snapshot whose peer lists reproduce edges. Each node
// lists its neighbors in edge order.
func FromGraph(nodes []core.Node, edges []core.Edge, takenAt time.Time) *Snapshot {
	peers := make(map[string][]string, len(nodes))
	for _, e := range edges {
		peers[e.From] = append(peers[e.From], e.To)
		peers[e.To] = append(peers[e.To], e.From)
	}
	s := &Snapshot{Nodes: make([]Peer, len(nodes))}
	if !takenAt.IsZero() {
		t := takenAt.UTC()
		s.TakenAt = &t
	}
	for i, n := range nodes {
		s.Nodes[i] = Peer{ID: n.ID, Peers: peers[n.ID], Attributes: n.Attrs}
	}
	return s
}

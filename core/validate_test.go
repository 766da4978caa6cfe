package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/peertopo/core"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges []core.Edge
		want  []error
	}{
		{
			name:  "clean",
			nodes: []string{"A", "B", "C"},
			edges: []core.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}},
		},
		{
			name:  "empty snapshot",
			nodes: nil,
			edges: nil,
		},
		{
			name:  "empty id",
			nodes: []string{"A", ""},
			want:  []error{core.ErrEmptyNodeID},
		},
		{
			name:  "duplicate node",
			nodes: []string{"A", "A"},
			want:  []error{core.ErrDuplicateNode},
		},
		{
			name:  "unknown endpoint",
			nodes: []string{"A"},
			edges: []core.Edge{{From: "A", To: "B"}},
			want:  []error{core.ErrUnknownNode},
		},
		{
			name:  "self loop",
			nodes: []string{"A"},
			edges: []core.Edge{{From: "A", To: "A"}},
			want:  []error{core.ErrSelfLoop},
		},
		{
			name:  "duplicate edge in reverse orientation",
			nodes: []string{"A", "B"},
			edges: []core.Edge{{From: "A", To: "B"}, {From: "B", To: "A"}},
			want:  []error{core.ErrDuplicateEdge},
		},
		{
			name:  "several problems joined",
			nodes: []string{"A", "A", "B"},
			edges: []core.Edge{{From: "B", To: "B"}, {From: "A", To: "Q"}},
			want:  []error{core.ErrDuplicateNode, core.ErrSelfLoop, core.ErrUnknownNode},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := core.Validate(tc.nodes, tc.edges)
			if len(tc.want) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tc.want {
				assert.True(t, errors.Is(err, want), "want %v in %v", want, err)
			}
		})
	}
}

package core

import (
	"errors"
	"fmt"
)

// Validate checks a snapshot against the assumptions BuildAdjacency makes and
// returns every violation joined into a single error (nil when the input is clean).
// Each joined error wraps one of the package sentinels, so callers branch with
// errors.Is(err, ErrUnknownNode) and friends.
//
// BuildAdjacency never calls Validate: analysis of a dirty snapshot still works,
// it just silently skips what it cannot represent.
//
// Complexity: O(V+E).
func Validate(nodes []string, edges []Edge) error {
	var errs []error

	known := make(map[string]struct{}, len(nodes))
	for i, id := range nodes {
		if id == "" {
			errs = append(errs, fmt.Errorf("%w: position %d", ErrEmptyNodeID, i))
			continue
		}
		if _, dup := known[id]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateNode, id))
			continue
		}
		known[id] = struct{}{}
	}

	pairs := make(map[[2]string]struct{}, len(edges))
	for i, e := range edges {
		if e.From == e.To {
			errs = append(errs, fmt.Errorf("%w: edge %d (%q)", ErrSelfLoop, i, e.From))
			continue
		}
		if _, ok := known[e.From]; !ok {
			errs = append(errs, fmt.Errorf("%w: edge %d endpoint %q", ErrUnknownNode, i, e.From))
		}
		if _, ok := known[e.To]; !ok {
			errs = append(errs, fmt.Errorf("%w: edge %d endpoint %q", ErrUnknownNode, i, e.To))
		}
		a, b := e.Canonical()
		if _, dup := pairs[[2]string{a, b}]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateEdge, e.Key()))
			continue
		}
		pairs[[2]string{a, b}] = struct{}{}
	}

	return errors.Join(errs...)
}

// Package clustering measures how tightly the neighborhoods of a peer
// topology are meshed.
//
// The local coefficient of v with degree k is the number of links among v's
// neighbors divided by k(k-1)/2; it is 0 when k < 2. The global coefficient
// is the arithmetic mean of local coefficients over nodes with degree ≥ 2
// only. Lower-degree nodes are excluded from numerator and denominator
// alike, and the result is 0 when no node qualifies.
//
// Complexity: Local is O(k²) adjacency probes; Global and LocalAll are
// O(Σ k²).
package clustering

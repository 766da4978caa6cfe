// Package centrality implements betweenness centrality (Brandes' algorithm)
// and bottleneck ranking for undirected, unweighted peer topologies.
//
// Betweenness:
//
//	For every source s a BFS records dist, sigma (number of shortest s→v
//	paths, seeded sigma[s] = 1) and shortest-path predecessors. Popping the
//	visit stack in reverse order accumulates dependencies
//
//	    delta[v] += sigma[v]/sigma[w] · (1 + delta[w])
//
//	for each predecessor v of w, and delta[w] is added to w's score unless w
//	is the source. Each unordered pair is seen from both endpoints, so all
//	scores are halved at the end. Scores are raw counts in [0, ∞); call
//	Normalize for the [0,1] rescale by (n-1)(n-2)/2.
//
// Path counts are float64. On very dense inputs sigma can grow
// combinatorially; float64 keeps the ratios finite where integer counts
// would overflow, at the cost of precision in the last bits.
//
// Bottlenecks:
//
//	TopBottlenecks ranks nodes by descending betweenness using a stable sort
//	over node insertion order, so ties keep the order in which nodes were
//	given to core.BuildAdjacency.
//
// Complexity: Betweenness is O(V·E) time and O(V + E) extra memory.
package centrality

// Package graphml serializes peer topologies to GraphML, the XML interchange
// format read by Gephi, yEd, NetworkX and Cytoscape.
//
// The exporter consumes raw node and edge lists rather than a core.Adjacency
// so per-node metadata survives the trip. Document layout:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
//	  <key id="d0" for="node" attr.name="region" attr.type="string"/>
//	  <graph id="G" edgedefault="undirected">
//	    <node id="A">
//	      <data key="d0">eu-west</data>
//	    </node>
//	    <edge id="e0" source="A" target="B"/>
//	  </graph>
//	</graphml>
//
// Keys:
//
//	One <key> per distinct attribute name, declared in first-seen order
//	(nodes in input order, each node's names sorted). The attr.type is taken
//	from the first non-nil value for that name:
//
//	  - signed/unsigned integers and integral floats  → int
//	  - other floats                                   → double
//	  - bool                                           → boolean
//	  - everything else                                → string
//
//	Nil values are treated as absent and produce no <data> element.
//
// Escaping: ids, endpoints and values escape & < > " ' so the output is always
// well-formed, including for zero nodes and edges. Edges are emitted exactly
// as given (ids e0..eN), duplicates included.
package graphml

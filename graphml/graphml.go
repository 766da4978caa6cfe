// SPDX-License-Identifier: MIT
//
// File: graphml.go
// Role: GraphML document rendering.
// Policy:
//   - Deterministic output for the same input.
//   - Write reports only I/O errors; Export cannot fail.

package graphml

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/peertopo/core"
)

// Attribute types as written to attr.type.
const (
	TypeInt     = "int"
	TypeDouble  = "double"
	TypeBoolean = "boolean"
	TypeString  = "string"
)

const (
	header    = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	namespace = "http://graphml.graphdrawing.org/xmlns"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the five XML-reserved characters with entity references.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Key is one declared node attribute.
type Key struct {
	ID   string // d0, d1, ...
	Name string
	Type string
}

// Keys scans nodes and returns the attribute declarations in first-seen order.
func Keys(nodes []core.Node) []Key {
	var keys []Key
	index := make(map[string]int)
	for _, n := range nodes {
		for _, name := range sortedNames(n.Attrs) {
			v := n.Attrs[name]
			i, seen := index[name]
			if !seen {
				index[name] = len(keys)
				keys = append(keys, Key{ID: "d" + strconv.Itoa(len(keys)), Name: name})
				i = index[name]
			}
			if keys[i].Type == "" && v != nil {
				keys[i].Type = TypeOf(v)
			}
		}
	}
	for i := range keys {
		if keys[i].Type == "" {
			keys[i].Type = TypeString
		}
	}
	return keys
}

// TypeOf infers the GraphML attr.type of a scalar value.
func TypeOf(v any) string {
	switch x := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInt
	case float32:
		return floatType(float64(x))
	case float64:
		return floatType(x)
	case bool:
		return TypeBoolean
	default:
		return TypeString
	}
}

func floatType(f float64) string {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
		return TypeInt
	}
	return TypeDouble
}

// Format renders a scalar value as GraphML character data (unescaped).
func Format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// Export renders nodes and edges as a GraphML document.
func Export(nodes []core.Node, edges []core.Edge) string {
	var b strings.Builder
	_ = Write(&b, nodes, edges)
	return b.String()
}

// Write streams the GraphML document for nodes and edges to w.
func Write(w io.Writer, nodes []core.Node, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	keys := Keys(nodes)
	byName := make(map[string]Key, len(keys))
	for _, k := range keys {
		byName[k.Name] = k
	}

	bw.WriteString(header)
	fmt.Fprintf(bw, "<graphml xmlns=\"%s\">\n", namespace)
	for _, k := range keys {
		fmt.Fprintf(bw, "  <key id=\"%s\" for=\"node\" attr.name=\"%s\" attr.type=\"%s\"/>\n",
			k.ID, Escape(k.Name), k.Type)
	}
	bw.WriteString("  <graph id=\"G\" edgedefault=\"undirected\">\n")

	for _, n := range nodes {
		names := presentNames(n.Attrs)
		if len(names) == 0 {
			fmt.Fprintf(bw, "    <node id=\"%s\"/>\n", Escape(n.ID))
			continue
		}
		fmt.Fprintf(bw, "    <node id=\"%s\">\n", Escape(n.ID))
		for _, name := range names {
			fmt.Fprintf(bw, "      <data key=\"%s\">%s</data>\n", byName[name].ID, Escape(Format(n.Attrs[name])))
		}
		bw.WriteString("    </node>\n")
	}

	for i, e := range edges {
		fmt.Fprintf(bw, "    <edge id=\"e%d\" source=\"%s\" target=\"%s\"/>\n", i, Escape(e.From), Escape(e.To))
	}

	bw.WriteString("  </graph>\n")
	bw.WriteString("</graphml>\n")
	return bw.Flush()
}

// sortedNames returns the attribute names of attrs in lexical order.
func sortedNames(attrs map[string]any) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// presentNames is sortedNames without nil-valued entries.
func presentNames(attrs map[string]any) []string {
	names := sortedNames(attrs)
	out := names[:0]
	for _, name := range names {
		if attrs[name] != nil {
			out = append(out, name)
		}
	}
	return out
}

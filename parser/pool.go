package parser

import "sync"

// Node pooling, adapted from the teacher's sync.Pool-backed Get/Put
// helpers (parsers/pool.go): ObjectNode and ArrayNode are the only node
// types built recursively during tree materialization, so they are the
// only ones worth pooling - scalars are cheap, fixed-size leaves.
var (
	objectNodePool = sync.Pool{
		New: func() interface{} { return &ObjectNode{} },
	}
	arrayNodePool = sync.Pool{
		New: func() interface{} { return &ArrayNode{} },
	}
)

// ReleaseTree returns every ObjectNode/ArrayNode reachable from n to the
// pool. Callers that are done with a parsed tree and want to reduce GC
// pressure across repeated parses may call this explicitly; it is never
// invoked automatically, since a caller may still hold references to
// sub-nodes after letting the root go.
func ReleaseTree(n Node) {
	switch v := n.(type) {
	case *ObjectNode:
		for _, name := range v.order {
			ReleaseTree(v.children[name])
		}
		v.order = nil
		v.children = nil
		v.built = false
		objectNodePool.Put(v)
	case *ArrayNode:
		for _, c := range v.elements {
			ReleaseTree(c)
		}
		v.elements = nil
		v.built = false
		arrayNodePool.Put(v)
	}
}

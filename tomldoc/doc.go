// Package tomldoc provides a reference-counted, navigable model of parsed
// TOML documents.
//
// # Overview
//
// A parse produces one shared document tree and a root Table view on it.
// Views are lightweight handles: they never copy the tree. Descending into a
// sub-table or array yields a new view that shares the same tree, and the
// tree is freed exactly when the last view sharing it is closed. A sub-table
// view therefore stays valid after its parent view (even the root view) has
// been closed.
//
//	doc, err := tomldoc.ParseFile("config.toml", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
//	v, err := doc.Get("server")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if server, ok := v.Table(); ok {
//	    defer server.Close()
//	    port, _ := server.Get("port")
//	    fmt.Println(port)
//	}
//
// # Resolving Slots
//
// Get and At decode a slot by probing its kinds in a fixed order: boolean,
// integer, float, string, timestamp, array, table. The first kind that
// matches wins. A missing key resolves to KindAbsent without error.
//
// # Indices
//
// Integer positions are 1-based with wrap-around: an index i <= 0 refers to
// position i+Len(), so 0 is the last element and -1 the one before it.
// Anything outside 1..Len() after that adjustment fails with
// types.ErrIndexOutOfRange.
//
// # Concurrency
//
// The tree is immutable after parsing and the shared reference count is
// atomic, so views may be read and closed from multiple goroutines. Each
// individual view must be closed exactly once; a second Close returns
// types.ErrReleased.
package tomldoc

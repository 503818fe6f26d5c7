// Package memdb provides an in-memory implementation of the recgen.Source
// capability set.
//
// A DB stands in for the foreign compiler's record database: handles are
// dense slot indices, the graph is append-only, and invalid handles answer
// with null results exactly as the foreign C layer would. It backs the
// library's tests and the recdump CLI; production callers bind Source to
// the real compiler instead.
//
// # Building a Database
//
//	db := memdb.New()
//	rec := db.NewRecord("Add")
//	db.AddField(rec, "opcode", db.Int(13))
//	db.AddField(rec, "mask", db.Bits(1, 0, 1))
//	db.AddField(rec, "pattern", db.Dag(
//		memdb.DagArg{Name: "lhs", Value: db.Int(5)},
//		memdb.DagArg{Value: db.Int(6)},
//	))
//
// # Fixtures
//
// Databases load from JSON or YAML fixture files:
//
//	records:
//	  - name: Add
//	    fields:
//	      - name: opcode
//	        value: { int: 13 }
//	      - name: mask
//	        value: { bits: [1, 0, 1] }
//
// Each value node sets exactly one variant key: bit, bits, int, string,
// code, list, dag, record, or unknown. Record references resolve by name
// and may point forward.
//
// # Release Bookkeeping
//
// The transient buffers a DB issues track their Free calls: tests assert
// OutstandingBuffers() == 0 after a decode, and a double Free panics so a
// broken release path fails loudly rather than corrupting counters.
package memdb

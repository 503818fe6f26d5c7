// Package value decodes foreign record-system handles into an owned,
// statically tagged value model.
//
// The foreign side reports a runtime type tag per value; Decode translates
// that tag, once, into a closed variant set:
//
//	Tag        Variant     Representation
//	─────────────────────────────────────────────
//	bit        KindBit     int8 restricted to {0, 1}
//	bits       KindBits    owned []int8, copied out of a transient buffer
//	int        KindInt     int64
//	string     KindString  owned string, lossy UTF-8 conversion
//	code       KindCode    owned string, lossy UTF-8 conversion
//	list       KindList    lazy List view
//	dag        KindDag     lazy Dag view
//	record     KindRecord  Record reference
//	(other)    KindInvalid decodes without error
//
// # Ownership
//
// Scalar variants own their payload. The transient foreign buffers backing
// bit vectors and strings are released exactly once, immediately after
// their contents are copied, on every path including error paths.
//
// List and Dag are borrowed views: they hold only the foreign handle and
// re-query the foreign side per access, so large structures are never
// copied eagerly. A view must not outlive the Source it came from.
//
// # Traversal
//
// Views expose bounds-checked indexed access plus lazy iterators:
//
//	list, _ := v.AsList()
//	for it := list.Iter(); ; {
//		elem, ok := it.Next()
//		if !ok {
//			break
//		}
//		// elem decoded on demand
//	}
//
// Dag iteration yields (name, value) pairs for named arguments only;
// positional arguments are skipped by the iterator and reachable through
// Get and Name.
//
// # Projection
//
// Callers that know the expected shape statically narrow with As:
//
//	n, err := value.As[int64](v)
//
// A mismatch returns a type_mismatch error carrying the rejected value.
// The peek accessors (Bit, Int, AsList, ...) are the non-consuming form,
// returning (payload, ok) without an error allocation.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[decode] bit_range: bit value 3 outside {0, 1}
//	[project] type_mismatch: have dag, want int
//
// Decode never panics on foreign null or sentinel outputs; unknown future
// tags decode to the invalid variant rather than failing.
package value

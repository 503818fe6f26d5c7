// Package recgen adapts the record database produced by a declarative-data
// compiler into an owned, statically tagged value model for Go programs.
//
// The foreign side exposes its values only through opaque handles and
// C-style accessor calls with runtime type tags. This library translates
// those handles, once, into a closed set of typed values that Go code can
// hold safely, and traverses composite values (bit vectors, lists, dag
// argument trees) lazily and recursively.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	recgen/          Root package with the Source capability interface and handle types
//	├── value/       Tagged Value model, handle decoding, composite views, projection
//	├── memdb/       In-memory Source implementation and fixture loading
//	├── errors/      Structured error types for debugging
//	└── cmd/recdump  CLI for inspecting a record database
//
// # Quick Start
//
// Decode a value handle against any Source:
//
//	v, err := value.Decode(src, handle)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if n, ok := v.Int(); ok {
//	    fmt.Println(n)
//	}
//
// Walk a list without materializing it:
//
//	list, _ := v.AsList()
//	for it := list.Iter(); ; {
//	    elem, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(elem)
//	}
//
// # The Foreign Boundary
//
// Source is the complete capability set this library requires from the
// foreign side. A production binding implements it over the compiler's C
// API; memdb implements it in pure Go for tests and tooling. Handles are
// valid exactly as long as the Source that issued them: the library holds
// no foreign ownership beyond transient buffers, which it releases exactly
// once, immediately after copying their contents.
//
// # Thread Safety
//
// All foreign calls are assumed non-reentrant and tied to a single
// compilation context. The library adds no locking; concurrent use is
// undefined unless the Source independently guarantees it.
package recgen

// Package catalog holds the pure state layer of shelf: the record and
// collection types, the action vocabulary, the reducer, and the derived
// view computation (search filtering plus pagination).
//
// Nothing in this package performs I/O. The reducer is a total function:
// every (collection, action) pair produces a valid collection, and failure
// modes (unknown record ID, unrecognized action) degrade to returning the
// input collection unchanged. Persistence and rendering live elsewhere and
// consume this package's outputs.
//
// # Identity
//
// Records are addressed by an immutable generated ID, assigned when the
// record enters the catalog. IDs exist only in memory: the durable format
// is the bare {title, author, year} triple, so a fresh set of IDs is
// minted on every load. Positions in the collection are a display concern;
// the shells resolve a rendered position to an ID immediately before
// dispatching.
package catalog

// Package ari implements the AMM Resource Identifier (ARI) value model used
// by the DTN Management Architecture: a typed value or a typed object
// reference exchanged between managers and agents in delay-tolerant
// networks.
//
// An ARI is built bottom-up by the New* constructors, which take ownership
// of any child containers passed to them. Once constructed, an ARI is
// treated as immutable; Equal, Hash and Copy all take read-only (value)
// receivers and never mutate their argument, so a constructed tree is safe
// to share across goroutines as long as none of them mutates it.
//
// The canonical text encoding of an ARI lives in the sibling text package,
// which keeps the wire format and its Options out of this package's core
// algebraic data type. ARI.String formats with default text.Options once
// that package has registered itself (see RegisterEncoder); it exists
// purely for %v/fmt convenience and error messages, not as the canonical
// codec entry point.
package ari

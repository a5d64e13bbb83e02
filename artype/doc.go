// Package artype implements the ARI type registry: the static bidirectional
// mapping between the ARI type enumeration and its IANA-registered
// canonical name, grounded the way the teacher's format package keeps its
// EncodingType/CompressionType enums as small integer types carrying a
// String() method — generalized here to a two-way lookup since ARI type
// names must parse as well as print.
package artype

// Package text implements the canonical ARI text encoder: a state-machine
// serializer that renders an ari.ARI tree as the URI-scheme form described
// by spec.md §4.G, conforming to Section 4.1 of draft ietf-dtn-ari-00.
//
// Options is built with the teacher's generic functional-option machinery
// (internal/options), the same pattern blob.TextEncoderConfig uses for its
// own With... constructors.
package text

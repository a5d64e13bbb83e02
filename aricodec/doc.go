// Package aricodec provides the lexical primitives used by the ARI text
// codec: percent encoding, identity-text detection, slash escaping, base16,
// base64/base64url, unsigned/signed integer radix rendering, and float
// formatting.
//
// None of the functions here know about the ARI value model; they operate
// on bytes and strings and are safe to reuse by any caller that needs the
// same RFC 3986 / RFC 4648 / C-strtoull flavored primitives.
package aricodec

package ari

// Copy returns a deep copy of a: every contained byte slice and container is
// recursively rebuilt, so mutating the copy (were that ever done; ARIs are
// otherwise treated as immutable) cannot affect a.
func Copy(a ARI) ARI {
	return Translate(a, &Translator{})
}

// ensure.go — short-circuit construction helpers.
//
// Pure sugar over the resolver in resolve.go; no semantics of their own.
// Both return the plain error interface so the success path is a true,
// comparable nil.
package anyhow

// Ensure returns nil when cond holds and a resolver-built error otherwise.
// The directive and args are untouched (and args unevaluated beyond the
// call itself) on the success path.
//
//	if err := anyhow.Ensure(len(pw) >= minLen, "policy; Password is too short", policy); err != nil {
//		return err
//	}
func Ensure(cond bool, directive string, args ...any) error {
	if cond {
		return nil
	}
	return resolve(directive, args)
}

// Bail unconditionally builds an error for immediate return.
//
//	return anyhow.Bail("?user_id, attempt =; Authentication failed", userID, attempt)
func Bail(directive string, args ...any) error {
	return resolve(directive, args)
}

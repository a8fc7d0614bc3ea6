// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// SecretHasher hashes and verifies secret strings (passwords and refresh
// tokens). The hash output is self-describing: it embeds the algorithm, cost
// parameters and salt, so verification needs only the stored hash and the
// candidate plaintext.
type SecretHasher interface {
	// Hash derives a salted hash from a non-empty plaintext secret.
	// An empty input is rejected with errors.ErrInvalidInput.
	Hash(secret string) (string, error)

	// Verify reports whether the plaintext re-hashes to the stored hash under
	// the embedded parameters. A mismatch, an empty hash or a malformed hash
	// all yield false; Verify never fails with an error.
	Verify(hash, secret string) bool
}

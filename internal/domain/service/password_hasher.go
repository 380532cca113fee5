package service

// PasswordHasher hashes and verifies the shared app password.
type PasswordHasher interface {
	// Hash returns a salted hash suitable for access.passwordHash.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}

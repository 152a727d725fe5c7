package core

// PasswordHasher abstracts password hashing so the domain never sees the
// underlying algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

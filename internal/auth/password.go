package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches what existing password hashes were produced with.
const bcryptCost = 10

// Hasher hashes passwords on the way into the store and compares them on
// login. It is an interface so handler tests can count Hash calls.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hashed string) bool
}

type BcryptHasher struct {
	cost int
}

func NewHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcryptCost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

package idp

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// SeedUser is a development account accepted by the mock identity provider.
type SeedUser struct {
	Username string
	Password string
	Email    string
	Role     string
}

// storedUser is a seeded account with its password hashed.
type storedUser struct {
	Username     string
	PasswordHash string
	Email        string
	Role         string
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), errors.Wrap(err, "bcrypt.GenerateFromPassword")
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// seedUsers hashes the seed passwords into the server's user table.
func seedUsers(seeds []SeedUser) (map[string]storedUser, error) {
	users := make(map[string]storedUser, len(seeds))
	for _, seed := range seeds {
		hash, err := HashPassword(seed.Password)
		if err != nil {
			return nil, errors.Wrapf(err, "seeding user %q", seed.Username)
		}
		users[strings.ToLower(seed.Username)] = storedUser{
			Username:     seed.Username,
			PasswordHash: hash,
			Email:        seed.Email,
			Role:         seed.Role,
		}
	}
	return users, nil
}

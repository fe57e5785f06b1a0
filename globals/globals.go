package globals

import (
	"context"
	"log"
	"os"
)

var JwtSecret []byte

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const RoleKey ContextKey = "role"

var Ctx = context.Background()

// LoadSecret reads JWT_SECRET from the environment. The server cannot
// issue or verify tokens without it, so absence is fatal.
func LoadSecret() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	JwtSecret = []byte(secret)
}

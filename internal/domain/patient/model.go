// Package patient manages patient records. Social security numbers are
// never stored or returned in clear text; only a SHA-256 digest is kept
// for identity matching.
package patient

import (
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	SSNHash   string    `json:"-" db:"ssn_hash"`
	BirthDate time.Time `json:"birth_date" db:"birth_date"`
	Gender    string    `json:"gender" db:"gender"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SetSSN hashes the given social security number and stores the digest.
func (p *Patient) SetSSN(ssn string) {
	p.SSNHash = HashSSN(ssn)
}

// MatchesSSN reports whether the given clear-text SSN matches the stored digest.
func (p *Patient) MatchesSSN(ssn string) bool {
	return p.SSNHash != "" && p.SSNHash == HashSSN(ssn)
}

// HashSSN returns the base64-encoded SHA-256 digest of the input.
func HashSSN(ssn string) string {
	sum := sha256.Sum256([]byte(ssn))
	return base64.StdEncoding.EncodeToString(sum[:])
}

package referral

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
)

// alphabet skips 0/O and 1/I; 32 symbols so a random byte maps without bias
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	defaultCodeLength  = 8
	defaultMaxAttempts = 5
	maxCodeLength      = 32
)

// ExistsFunc reports whether a referral code is already taken
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// CodeGenerator produces globally unique referral codes such as "GSII-7KQ2M9XD"
type CodeGenerator struct {
	random      io.Reader
	length      int
	maxAttempts int
}

// NewCodeGenerator creates a generator backed by crypto/rand
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{random: rand.Reader, length: defaultCodeLength, maxAttempts: defaultMaxAttempts}
}

// WithRandom replaces the randomness source
func (g *CodeGenerator) WithRandom(r io.Reader) *CodeGenerator {
	g.random = r
	return g
}

// WithMaxAttempts sets how many collisions are tolerated before giving up
func (g *CodeGenerator) WithMaxAttempts(n int) *CodeGenerator {
	if n > 0 {
		g.maxAttempts = n
	}
	return g
}

// Generate draws codes until exists reports a free one.
// Returns ErrConstraintViolation when every attempt collided.
func (g *CodeGenerator) Generate(ctx context.Context, program entity.ProgramID, exists ExistsFunc) (string, error) {
	prefix := strings.ReplaceAll(string(program), "-", "") + "-"
	buf := make([]byte, g.length)

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if _, err := io.ReadFull(g.random, buf); err != nil {
			return "", fmt.Errorf("reading randomness: %w", err)
		}
		var sb strings.Builder
		sb.Grow(len(prefix) + g.length)
		sb.WriteString(prefix)
		for _, b := range buf {
			sb.WriteByte(alphabet[int(b)%len(alphabet)])
		}
		code := sb.String()

		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: no free referral code after %d attempts", errs.ErrConstraintViolation, g.maxAttempts)
}

// NormalizeCode trims and upper-cases a user supplied code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCode rejects codes that cannot have been generated by this service
func ValidateCode(code string) error {
	code = NormalizeCode(code)
	if code == "" {
		return nil
	}
	if len(code) > maxCodeLength {
		return fmt.Errorf("%w: too long", errs.ErrInvalidReferralCode)
	}
	for _, r := range code {
		if !(r == '-' || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return fmt.Errorf("%w: unexpected character %q", errs.ErrInvalidReferralCode, r)
		}
	}
	return nil
}

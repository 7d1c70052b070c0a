package jwt

import (
	"fmt"
	"time"

	sessionCfg "github.com/KasumiMercury/primind-auth/internal/auth/config/session"
	domain "github.com/KasumiMercury/primind-auth/internal/auth/domain/session"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/clock"
	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"golang.org/x/crypto/sha3"
)

// sessionAudience keeps session cookies from being accepted as any other
// HS256 token signed with the same secret.
const sessionAudience = "primind-auth-session"

type SessionClaims struct {
	jwt.Claims
}

type SessionJWTGenerator struct {
	sessionCfg *sessionCfg.Config
}

func NewSessionJWTGenerator(cfg *sessionCfg.Config) *SessionJWTGenerator {
	return &SessionJWTGenerator{
		sessionCfg: cfg,
	}
}

// Generate signs a token naming the session (jti) and its user (sub). The
// token carries no provider tokens; those stay in the session store.
func (g *SessionJWTGenerator) Generate(session *domain.Session) (string, error) {
	if session == nil {
		return "", ErrSessionRequiredForToken
	}

	key := deriveHMACKey(g.sessionCfg.Secret)

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: key},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrJWTSignerCreationFailed, err)
	}

	now := session.CreatedAt()
	if now.IsZero() {
		now = time.Now()
	}

	claims := SessionClaims{
		Claims: jwt.Claims{
			ID:       session.ID().String(),
			Subject:  session.UserID().String(),
			Audience: jwt.Audience{sessionAudience},
			IssuedAt: jwt.NewNumericDate(now),
			Expiry:   jwt.NewNumericDate(session.ExpiresAt()),
		},
	}

	return jwt.Signed(signer).Claims(claims).Serialize()
}

func deriveHMACKey(secret string) []byte {
	sum := sha3.Sum256([]byte(secret))

	return sum[:]
}

type SessionJWTValidator struct {
	sessionCfg *sessionCfg.Config
	clock      clock.Clock
}

func NewSessionJWTValidator(cfg *sessionCfg.Config) *SessionJWTValidator {
	return NewSessionJWTValidatorWithClock(cfg, &clock.RealClock{})
}

func NewSessionJWTValidatorWithClock(cfg *sessionCfg.Config, clk clock.Clock) *SessionJWTValidator {
	return &SessionJWTValidator{
		sessionCfg: cfg,
		clock:      clk,
	}
}

func (v *SessionJWTValidator) parseClaims(token string) (*SessionClaims, error) {
	key := deriveHMACKey(v.sessionCfg.Secret)

	parsed, err := jwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return nil, err
	}

	//exhaustruct:ignore
	claims := &SessionClaims{}
	if err := parsed.Claims(key, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

func (v *SessionJWTValidator) Verify(token string) error {
	claims, err := v.parseClaims(token)
	if err != nil {
		return err
	}

	if err := claims.Validate(jwt.Expected{
		AnyAudience: jwt.Audience{sessionAudience},
		Time:        v.clock.Now(),
	}); err != nil {
		return err
	}

	return nil
}

func (v *SessionJWTValidator) ExtractSessionID(token string) (string, error) {
	claims, err := v.parseClaims(token)
	if err != nil {
		return "", err
	}

	if claims == nil || claims.ID == "" {
		return "", ErrSessionIDMissing
	}

	return claims.ID, nil
}

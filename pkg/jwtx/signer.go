package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/securebank/bankd/pkg/cryptox"
)

var (
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrIssuer      = errors.New("jwtx: unexpected issuer")
	ErrBadToken    = errors.New("jwtx: malformed or unverifiable token")
	ErrUnknownKID  = errors.New("jwtx: unknown key id")
)

// Signer signs and verifies session tokens with a single Ed25519 keypair
// generated at startup. Restarting the process invalidates outstanding
// tokens, which is acceptable here because sessions are also persisted and
// re-login is cheap.
type Signer struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewEphemeralSigner generates a fresh Ed25519 keypair with a random kid.
func NewEphemeralSigner() (*Signer, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate ed25519 key: %w", err)
	}

	kid, err := cryptox.GenerateToken(8)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate kid: %w", err)
	}

	return &Signer{
		kid: kid,
		key: priv,
		pub: pub,
	}, nil
}

func (s *Signer) Alg() string { return jwt.SigningMethodEdDSA.Alg() }
func (s *Signer) KID() string { return s.kid }

// Ready reports whether the signer holds usable key material.
func (s *Signer) Ready() bool {
	return len(s.key) == ed25519.PrivateKeySize && len(s.pub) == ed25519.PublicKeySize
}

// Sign turns claims into a signed compact JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// Verifier validates tokens and returns their claims.
type Verifier interface {
	Verify(tokenStr string) (*Claims, error)
}

// NewVerifier returns a Verifier bound to this signer's public key and the
// given expected issuer.
func (s *Signer) NewVerifier(issuer string) Verifier {
	return &eddsaVerifier{signer: s, issuer: issuer}
}

type eddsaVerifier struct {
	signer *Signer
	issuer string
}

func (v *eddsaVerifier) Verify(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid != v.signer.kid {
			return nil, ErrUnknownKID
		}
		return v.signer.pub, nil
	})
	if err != nil {
		// jwt/v5 validates exp/nbf during parsing; surface expiry distinctly.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrBadToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrBadToken
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return nil, err
	}

	return claims, nil
}

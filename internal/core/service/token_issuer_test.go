package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenIssuer_ClaimsAndExpiry(t *testing.T) {
	issuer := NewTokenIssuer("topsecret", 2*time.Hour)

	token, err := issuer.Issue("a@b.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			t.Fatalf("unexpected signing method %s", token.Method.Alg())
		}
		return []byte("topsecret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}

	if claims["email"] != "a@b.com" {
		t.Fatalf("email claim = %v", claims["email"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing")
	}
	want := time.Now().Add(2 * time.Hour).Unix()
	if got := int64(exp); got < want-5 || got > want+5 {
		t.Fatalf("exp = %d, want ~%d", got, want)
	}
}

func TestTokenIssuer_EveryIssuanceDistinct(t *testing.T) {
	issuer := NewTokenIssuer("topsecret", time.Hour)

	a, err := issuer.Issue("a@b.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	b, err := issuer.Issue("a@b.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if a == b {
		t.Fatalf("two tokens for the same email must differ")
	}
}

func TestTokenIssuer_WrongSecretRejected(t *testing.T) {
	issuer := NewTokenIssuer("topsecret", time.Hour)

	token, err := issuer.Issue("a@b.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Fatalf("expected signature verification to fail")
	}
}

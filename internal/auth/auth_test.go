package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	if err := Init("test-secret", time.Hour); err != nil {
		t.Fatalf("init: %v", err)
	}

	token, err := GenerateToken("user-123")

	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	subject, err := VerifyToken(token)

	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if subject != "user-123" {
		t.Errorf("subject = %q, want user-123", subject)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	if err := Init("test-secret", -time.Minute); err != nil {
		t.Fatalf("init: %v", err)
	}

	token, err := GenerateToken("user-123")

	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := VerifyToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestTokenFromDifferentSecretRejected(t *testing.T) {
	if err := Init("secret-one", time.Hour); err != nil {
		t.Fatalf("init: %v", err)
	}

	token, err := GenerateToken("user-123")

	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if err := Init("secret-two", time.Hour); err != nil {
		t.Fatalf("re-init: %v", err)
	}

	if _, err := VerifyToken(token); err == nil {
		t.Error("token signed with old secret accepted")
	}
}

func TestMalformedTokenRejected(t *testing.T) {
	if err := Init("test-secret", time.Hour); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := VerifyToken(tok); err == nil {
			t.Errorf("malformed token %q accepted", tok)
		}
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("supersecret")

	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if hash == "supersecret" {
		t.Fatal("password stored in the clear")
	}

	if !VerifyPassword("supersecret", hash) {
		t.Error("correct password rejected")
	}

	if VerifyPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

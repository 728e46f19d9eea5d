package security_test

import (
	"strings"
	"testing"

	"tanglaw_backend/internal/common/security"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := security.HashPassword("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw1" || strings.Contains(hash, "pw1") {
		t.Fatal("hash is not opaque")
	}
	if !security.CheckPasswordHash("pw1", hash) {
		t.Error("correct password rejected")
	}
	if security.CheckPasswordHash("pw2", hash) {
		t.Error("wrong password accepted")
	}
}

func TestHashesAreSalted(t *testing.T) {
	a, err := security.HashPassword("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := security.HashPassword("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}

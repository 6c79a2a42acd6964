package encrypt

import (
	"testing"
)

func TestHashVerifyPassword(t *testing.T) {
	hash, err := HashPassword("box-box-box")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "box-box-box" {
		t.Fatal("hash should not equal plaintext")
	}

	if !VerifyPassword(hash, "box-box-box") {
		t.Fatal("expected password to verify")
	}
	if VerifyPassword(hash, "wrong-password") {
		t.Fatal("wrong password should not verify")
	}
}

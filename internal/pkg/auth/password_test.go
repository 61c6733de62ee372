package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cure-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cure-pass" {
		t.Fatal("password stored in plain text")
	}

	if !CheckPassword(hash, "s3cure-pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical")
	}
}

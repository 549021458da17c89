package auth

import "testing"

func TestPasswordService_Roundtrip(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}

	if !svc.Verify("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if svc.Verify("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestPasswordService_HashesDiffer(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("same-input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := svc.Hash("same-input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Error("expected salted hashes to differ")
	}
}

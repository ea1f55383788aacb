package passwords

import "testing"

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("password123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !Verify("password123", digest) {
		t.Fatalf("expected verification to succeed for correct password")
	}
	if Verify("wrong-password", digest) {
		t.Fatalf("expected verification to fail for wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	d1, err := Hash("password123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	d2, err := Hash("password123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two hashes of the same plaintext should differ")
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest must fail verification")
	}
	if Verify("anything", "") {
		t.Fatalf("empty digest must fail verification")
	}
}

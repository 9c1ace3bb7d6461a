package aescrypt

import "testing"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	secret := "test-secret"
	cipher, err := EncryptAES("42", secret)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if cipher == "42" {
		t.Fatal("ciphertext equals plaintext")
	}

	plain, err := DecryptAES(cipher, secret)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if plain != "42" {
		t.Fatalf("plain = %q, want 42", plain)
	}
}

func TestDecryptWrongSecretFails(t *testing.T) {
	cipher, err := EncryptAES("42", "secret-a")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if _, err := DecryptAES(cipher, "secret-b"); err == nil {
		t.Fatal("expected decrypt failure with wrong secret")
	}
}

func TestEncryptIsRandomized(t *testing.T) {
	a, err := EncryptAES("42", "secret")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	b, err := EncryptAES("42", "secret")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if a == b {
		t.Fatal("two encryptions of the same value must differ (random nonce)")
	}
}

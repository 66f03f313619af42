package auth

import "testing"

func TestCheckPassword(t *testing.T) {
	if !CheckPassword("secret", "secret") {
		t.Error("equal passwords rejected")
	}
	if CheckPassword("secret", "Secret") {
		t.Error("case-differing passwords accepted")
	}
	if CheckPassword("secret", "") {
		t.Error("empty attempt accepted")
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	plain := `[{"id":"u1"}]`

	sealed, err := Encrypt(key, plain)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if sealed == plain {
		t.Fatal("ciphertext equals plaintext")
	}

	got, err := Decrypt(key, sealed)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if got != plain {
		t.Errorf("round trip = %q, want %q", got, plain)
	}
}

func TestDecryptWrongKey(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	other := []byte("ffffffffffffffffffffffffffffffff")

	sealed, err := Encrypt(key, "payload")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if _, err := Decrypt(other, sealed); err == nil {
		t.Error("wrong key decrypted successfully")
	}
}

func TestDecryptGarbage(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	if _, err := Decrypt(key, "not base64!!"); err == nil {
		t.Error("garbage input decrypted")
	}
	if _, err := Decrypt(key, "YQ=="); err == nil {
		t.Error("too-short ciphertext decrypted")
	}
}

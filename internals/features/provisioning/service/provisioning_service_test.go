package service

import (
	"encoding/base64"
	"errors"
	"testing"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec("unit-test-secret")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return c
}

func TestCodecRoundTrip(t *testing.T) {
	c := newTestCodec(t)

	in := Payload{
		FirebaseConfig: `{"apiKey":"AIza-xyz","appId":"1:123:android:abc"}`,
		CompanyName:    "PT Maju Bersama",
		ProjectID:      "maju-bersama-prod",
	}

	token, err := c.Encrypt(in)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	out, err := c.Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if *out != in {
		t.Errorf("round trip mismatch: got %+v want %+v", *out, in)
	}
}

func TestDecodeRejectsInvalidTokens(t *testing.T) {
	c := newTestCodec(t)

	valid, err := c.Encrypt(Payload{
		FirebaseConfig: "cfg",
		CompanyName:    "Acme",
		ProjectID:      "acme",
	})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	// flip satu byte di tengah ciphertext
	raw, _ := base64.StdEncoding.DecodeString(valid)
	raw[len(raw)/2] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not base64", "%%%not-base64%%%"},
		{"too short", base64.StdEncoding.EncodeToString([]byte("abc"))},
		{"tampered ciphertext", tampered},
		{"wrong key", mustEncryptWith(t, "other-secret")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Decode(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("got %v, want ErrInvalidToken", err)
			}
		})
	}
}

func mustEncryptWith(t *testing.T, secret string) string {
	t.Helper()
	other, err := NewCodec(secret)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	token, err := other.Encrypt(Payload{FirebaseConfig: "x", CompanyName: "y", ProjectID: "z"})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	return token
}

func TestParsePayloadRejectsUnsupportedFormats(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{"not json", "hello world"},
		{"json array", `["a","b"]`},
		{"missing projectId", `{"firebaseConfig":"cfg","companyName":"Acme"}`},
		{"missing companyName", `{"firebaseConfig":"cfg","projectId":"acme"}`},
		{"missing firebaseConfig", `{"companyName":"Acme","projectId":"acme"}`},
		{"empty projectId", `{"firebaseConfig":"cfg","companyName":"Acme","projectId":""}`},
		{"ill-typed field", `{"firebaseConfig":42,"companyName":"Acme","projectId":"acme"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePayload([]byte(tt.plaintext)); !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("got %v, want ErrUnsupportedFormat", err)
			}
		})
	}
}

// Token valid secara kriptografik tapi payload versi lain harus jatuh
// ke ErrUnsupportedFormat, bukan ErrInvalidToken.
func TestDecodeDistinguishesFormatFromCrypto(t *testing.T) {
	c := newTestCodec(t)

	// Encrypt plaintext arbitrer lewat jalur internal: bungkus payload lama
	// yang tidak punya field wajib.
	legacy := Payload{} // semua field kosong
	token, err := c.Encrypt(legacy)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	_, err = c.Decode(token)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}

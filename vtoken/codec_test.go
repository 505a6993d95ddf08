package vtoken

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func newTestCodec(t *testing.T, pepperLength int, hashName string) *Codec {
	t.Helper()

	codec, err := NewCodec(pepperLength, hashName)
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}
	return codec
}

func TestEncodeGoldenValue(t *testing.T) {
	codec := newTestCodec(t, 32, "SHA256")

	encoded, err := codec.Encode(
		base64.StdEncoding.EncodeToString([]byte("Pepper")),
		base64.StdEncoding.EncodeToString([]byte("Token")),
		base64.StdEncoding.EncodeToString([]byte("UserName")),
	)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	const want = "UGVwcGVyVG9rZW5Vc2VyTmFtZQ=="
	if encoded != want {
		t.Fatalf("encoded = %q, want %q", encoded, want)
	}
}

func TestRoundTrip(t *testing.T) {
	codec := newTestCodec(t, 16, "SHA256")

	pepper := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xAB}, 16))
	token := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x5C}, 32))
	username := "UserName"

	encoded, err := codec.Encode(pepper, token, base64.StdEncoding.EncodeToString([]byte(username)))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	gotPepper, gotToken, gotUsername, err := codec.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if gotPepper != pepper {
		t.Errorf("pepper = %q, want %q", gotPepper, pepper)
	}
	if gotToken != token {
		t.Errorf("token = %q, want %q", gotToken, token)
	}
	if gotUsername != username {
		t.Errorf("username = %q, want %q", gotUsername, username)
	}
}

func TestDecodeBoundary(t *testing.T) {
	codec := newTestCodec(t, 16, "SHA256")

	// Exactly pepper+digest bytes: zero-length username must be rejected.
	raw := bytes.Repeat([]byte{0x01}, 16+32)
	_, _, _, err := codec.Decode(base64.StdEncoding.EncodeToString(raw))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty username, got %v", err)
	}

	// One more byte carries a one-character username and must succeed.
	raw = append(raw, 'A')
	_, _, username, err := codec.Decode(base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("Decode failed at boundary+1: %v", err)
	}
	if username != "A" {
		t.Fatalf("username = %q, want %q", username, "A")
	}
}

func TestDecodeRejectsBadBase64(t *testing.T) {
	codec := newTestCodec(t, 16, "SHA256")

	_, _, _, err := codec.Decode("%%% not base64 %%%")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestDecodeRejectsInvalidUTF8Username(t *testing.T) {
	codec := newTestCodec(t, 16, "SHA256")

	raw := bytes.Repeat([]byte{0x01}, 16+32)
	raw = append(raw, 0xFF, 0xFE)
	_, _, _, err := codec.Decode(base64.StdEncoding.EncodeToString(raw))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for non-utf8 username, got %v", err)
	}
}

func TestEncodeRejectsBadBase64Input(t *testing.T) {
	codec := newTestCodec(t, 16, "SHA256")

	_, err := codec.Encode("!!!", "VG9rZW4=", "VXNlcg==")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewCodecRejectsUnknownHash(t *testing.T) {
	if _, err := NewCodec(16, "whirlpool"); err == nil {
		t.Fatal("expected error for unknown hash algorithm")
	}
}

func TestNewCodecRejectsNonPositivePepperLength(t *testing.T) {
	if _, err := NewCodec(0, "SHA256"); err == nil {
		t.Fatal("expected error for zero pepper length")
	}
}

func TestHashNameNormalization(t *testing.T) {
	for _, name := range []string{"sha-256", "SHA256", " sha256 "} {
		codec, err := NewCodec(16, name)
		if err != nil {
			t.Fatalf("NewCodec(%q) failed: %v", name, err)
		}
		if codec.TokenLength() != 32 {
			t.Fatalf("TokenLength for %q = %d, want 32", name, codec.TokenLength())
		}
	}
}

func TestTokenLengthTracksDigestSize(t *testing.T) {
	cases := map[string]int{
		"MD5":    16,
		"SHA1":   20,
		"SHA256": 32,
		"SHA384": 48,
		"SHA512": 64,
	}
	for name, want := range cases {
		codec := newTestCodec(t, 16, name)
		if got := codec.TokenLength(); got != want {
			t.Errorf("TokenLength(%s) = %d, want %d", name, got, want)
		}
	}
}

package password

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func newTestValidator(t *testing.T, cfg Config) *Validator {
	t.Helper()

	v, err := NewValidator(cfg)
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}
	return v
}

func TestEntropyEmptyPassword(t *testing.T) {
	if got := EntropyBits(""); got != 0 {
		t.Fatalf("EntropyBits(\"\") = %v, want 0", got)
	}
}

func TestEntropyLowercaseGolden(t *testing.T) {
	// 8 lowercase letters: 8 * log2(26) ≈ 37.6 bits.
	got := EntropyBits("password")
	want := 8 * math.Log2(26)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("EntropyBits(\"password\") = %v, want %v", got, want)
	}
	if got >= 40 {
		t.Fatalf("expected \"password\" below 40 bits, got %v", got)
	}
}

func TestEntropyFourClassesClearsMinimum(t *testing.T) {
	// Upper + lower + digit + punctuation: 10 * log2(77) ≈ 62.7 bits.
	if got := EntropyBits("Sw0rdfish!"); got <= 40 {
		t.Fatalf("EntropyBits(\"Sw0rdfish!\") = %v, want > 40", got)
	}
}

func TestEntropyMonotonicOverClasses(t *testing.T) {
	// Same length, strictly growing class coverage.
	passwords := []string{
		"aaaaaaaa",
		"aaaaaaa1",
		"aaaaaA1b",
		"aaaa!A1b",
	}
	prev := -1.0
	for _, p := range passwords {
		got := EntropyBits(p)
		if got <= prev {
			t.Fatalf("EntropyBits(%q) = %v, want > %v", p, got, prev)
		}
		prev = got
	}
}

func TestEntropyNonASCIISingleClass(t *testing.T) {
	// All non-ASCII runes share one class: both passwords are 7 runes with
	// classes {lowercase, non-ASCII}, so the estimates match exactly.
	one := EntropyBits("aaaaaaá")
	many := EntropyBits("aaáéíóú")
	if one != many {
		t.Fatalf("EntropyBits mismatch: %v vs %v", one, many)
	}
}

func TestValidateEmptyPassword(t *testing.T) {
	v := newTestValidator(t, Config{MinEntropyBits: 40, MaxLength: 128})

	result, err := v.Validate("")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result != ResultInsufficientEntropy {
		t.Fatalf("result = %v, want %v", result, ResultInsufficientEntropy)
	}
}

func TestValidateInsufficientEntropy(t *testing.T) {
	v := newTestValidator(t, Config{MinEntropyBits: 40, MaxLength: 128})

	result, err := v.Validate("password")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result != ResultInsufficientEntropy {
		t.Fatalf("result = %v, want %v", result, ResultInsufficientEntropy)
	}
}

func TestValidateTooLong(t *testing.T) {
	v := newTestValidator(t, Config{MinEntropyBits: 40, MaxLength: 12})

	result, err := v.Validate("Sw0rdfish!Sw0rdfish!")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result != ResultTooLong {
		t.Fatalf("result = %v, want %v", result, ResultTooLong)
	}
}

func TestValidateBlacklisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blacklist.txt")
	if err := os.WriteFile(path, []byte("Sw0rdfish!\nTr0ub4dor&3\n"), 0o600); err != nil {
		t.Fatalf("write blacklist: %v", err)
	}

	v := newTestValidator(t, Config{MinEntropyBits: 40, MaxLength: 128, BlacklistPath: path})

	result, err := v.Validate("Sw0rdfish!")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result != ResultBlacklisted {
		t.Fatalf("result = %v, want %v", result, ResultBlacklisted)
	}

	result, err = v.Validate("C0rrecthorse!battery")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result != ResultValid {
		t.Fatalf("result = %v, want %v", result, ResultValid)
	}
}

func TestValidateBlacklistLoadFailure(t *testing.T) {
	v := newTestValidator(t, Config{
		MinEntropyBits: 40,
		MaxLength:      128,
		BlacklistPath:  filepath.Join(t.TempDir(), "no-such-file.txt"),
	})

	if _, err := v.Validate("Sw0rdfish!"); err == nil {
		t.Fatal("expected blacklist load error")
	}

	// The failure is memoized; a second validation observes the same error.
	if _, err := v.Validate("Sw0rdfish!"); err == nil {
		t.Fatal("expected memoized blacklist load error")
	}
}

func TestValidateNoBlacklistConfigured(t *testing.T) {
	v := newTestValidator(t, Config{MinEntropyBits: 40, MaxLength: 128})

	result, err := v.Validate("Sw0rdfish!")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result != ResultValid {
		t.Fatalf("result = %v, want %v", result, ResultValid)
	}
}

func TestNewValidatorRejectsBadConfig(t *testing.T) {
	if _, err := NewValidator(Config{MinEntropyBits: 0, MaxLength: 128}); err == nil {
		t.Fatal("expected error for zero minimum entropy")
	}
	if _, err := NewValidator(Config{MinEntropyBits: 40, MaxLength: 0}); err == nil {
		t.Fatal("expected error for zero maximum length")
	}
}

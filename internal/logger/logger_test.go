package logger

import "testing"

func TestSanitizeKVsRedactsSensitiveKeys(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"password", "hunter2",
		"access_token", "abc",
		"jwt_secret_key", "s3cret",
		"user_id", "user-1",
	})
	if out[1] != "[REDACTED]" || out[3] != "[REDACTED]" || out[5] != "[REDACTED]" {
		t.Fatalf("sensitive values not redacted: %v", out)
	}
	if out[7] != "user-1" {
		t.Fatalf("benign value mangled: %v", out)
	}
}

func TestSanitizeKVsRedactsJWTShapedValues(t *testing.T) {
	token := "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ1c2VyLTEifQ.sig"
	out := sanitizeKVs([]interface{}{"value", token})
	if out[1] != "[REDACTED]" {
		t.Fatalf("JWT-shaped value not redacted: %v", out)
	}

	out = sanitizeKVs([]interface{}{"value", "a.b.c"})
	if out[1] != "a.b.c" {
		t.Fatalf("short dotted string wrongly redacted: %v", out)
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"dangling"})
	if len(out) != 1 || out[0] != "dangling" {
		t.Fatalf("odd-length input mishandled: %v", out)
	}
}

package support

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("SUBPLAN_TEST_ENV", "value")
	if got := GetEnv("SUBPLAN_TEST_ENV", "fallback"); got != "value" {
		t.Fatalf("GetEnv returned %s, want value", got)
	}

	if got := GetEnv("SUBPLAN_TEST_ENV_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv returned %s, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SUBPLAN_TEST_PORT", "5434")
	if got := GetEnvInt("SUBPLAN_TEST_PORT", 1); got != 5434 {
		t.Fatalf("GetEnvInt returned %d, want 5434", got)
	}

	t.Setenv("SUBPLAN_TEST_PORT", "not-a-number")
	if got := GetEnvInt("SUBPLAN_TEST_PORT", 7); got != 7 {
		t.Fatalf("GetEnvInt returned %d, want fallback 7", got)
	}
}

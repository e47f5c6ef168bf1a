package utils

import (
	"testing"
)

func TestGetEnv_DefaultWhenUnset(t *testing.T) {
	if got := GetEnv("AIHUB_TEST_MISSING", "fallback", nil); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGetEnv_ReadsEnvironment(t *testing.T) {
	t.Setenv("AIHUB_TEST_SET", "value")
	if got := GetEnv("AIHUB_TEST_SET", "fallback", nil); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestGetEnvAsInt_DefaultOnGarbage(t *testing.T) {
	t.Setenv("AIHUB_TEST_INT", "not-a-number")
	if got := GetEnvAsInt("AIHUB_TEST_INT", 42, nil); got != 42 {
		t.Fatalf("expected default 42, got %d", got)
	}
}

func TestGetEnvAsInt_ParsesValue(t *testing.T) {
	t.Setenv("AIHUB_TEST_INT", "7")
	if got := GetEnvAsInt("AIHUB_TEST_INT", 42, nil); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestGetEnvAsList_SplitsAndTrims(t *testing.T) {
	t.Setenv("AIHUB_TEST_LIST", " a, b ,, c ")
	got := GetEnvAsList("AIHUB_TEST_LIST", []string{"default"}, nil)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected list: %v", got)
	}
}

func TestGetEnvAsList_DefaultWhenEmpty(t *testing.T) {
	t.Setenv("AIHUB_TEST_LIST", " , ,")
	got := GetEnvAsList("AIHUB_TEST_LIST", []string{"default"}, nil)
	if len(got) != 1 || got[0] != "default" {
		t.Fatalf("expected default, got %v", got)
	}
}

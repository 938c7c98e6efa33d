package problemgen

import "testing"

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
		Retryable: true,
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 1 {
		t.Fatalf("expected 1 validator, got %d", len(cfg.Validators))
	}
	if cfg.Validators[0].Name() != "math-check" {
		t.Errorf("expected math-check, got %q", cfg.Validators[0].Name())
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxAttempts != 20 {
		t.Errorf("expected MaxAttempts 20, got %d", cfg.MaxAttempts)
	}
	if cfg.Logger != nil {
		t.Error("expected nil Logger by default")
	}
}

package validation

import "testing"

func TestValidateAmount(t *testing.T) {
	valid := []string{"1", "0.01", "150.50", " 20 "}
	for _, in := range valid {
		if err := ValidateAmount(in); err != nil {
			t.Errorf("ValidateAmount(%q) err=%v", in, err)
		}
	}

	invalid := []string{"", "0", "-5", "1.005", "abc"}
	for _, in := range invalid {
		if err := ValidateAmount(in); err == nil {
			t.Errorf("ValidateAmount(%q) expected error", in)
		}
	}
}

func TestValidateInitialBalance(t *testing.T) {
	valid := []string{"", "0", "100", "99.99"}
	for _, in := range valid {
		if err := ValidateInitialBalance(in); err != nil {
			t.Errorf("ValidateInitialBalance(%q) err=%v", in, err)
		}
	}

	invalid := []string{"-1", "1.123", "x"}
	for _, in := range invalid {
		if err := ValidateInitialBalance(in); err == nil {
			t.Errorf("ValidateInitialBalance(%q) expected error", in)
		}
	}
}

func TestValidateAccountNumber(t *testing.T) {
	valid := []string{"", "4810275396"}
	for _, in := range valid {
		if err := ValidateAccountNumber(in); err != nil {
			t.Errorf("ValidateAccountNumber(%q) err=%v", in, err)
		}
	}

	invalid := []string{"123", "0810275396", "48102753961", "48102753ab"}
	for _, in := range invalid {
		if err := ValidateAccountNumber(in); err == nil {
			t.Errorf("ValidateAccountNumber(%q) expected error", in)
		}
	}
}

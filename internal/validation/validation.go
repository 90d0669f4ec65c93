// Package validation holds the input-shape checks used by the CLI
// layer before values reach the ledger engine.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmorales/cuentas/internal/constants"
	"github.com/nmorales/cuentas/internal/money"
)

// ValidateAmount checks that a string is a parseable positive amount
// with at most two decimal places. Usable as a huh input validator.
func ValidateAmount(val string) error {
	val = strings.TrimSpace(val)
	if val == "" {
		return fmt.Errorf("amount is required")
	}

	m, err := money.Parse(val)
	if err != nil {
		return err
	}
	if !m.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// ValidateInitialBalance allows empty input and zero, rejects negative
// or malformed values.
func ValidateInitialBalance(val string) error {
	val = strings.TrimSpace(val)
	if val == "" || val == "0" {
		return nil
	}

	m, err := money.Parse(val)
	if err != nil {
		return err
	}
	if m.IsNegative() {
		return fmt.Errorf("initial balance can't be negative")
	}
	return nil
}

// ValidateAccountNumber accepts an empty string (a number will be
// generated) or exactly ten digits not starting with zero.
func ValidateAccountNumber(val string) error {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}

	if len(val) != constants.AccountNumberDigits {
		return fmt.Errorf("account number must be %d digits", constants.AccountNumberDigits)
	}
	if val[0] == '0' {
		return fmt.Errorf("account number can't start with zero")
	}
	if _, err := strconv.ParseInt(val, 10, 64); err != nil {
		return fmt.Errorf("account number must contain only digits")
	}
	return nil
}

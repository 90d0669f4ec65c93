package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmorales/cuentas/internal/validation"
)

// PromptOwnerID asks for the id of the owning principal.
func PromptOwnerID() (int64, error) {
	val, err := PromptInput("Owner ID", "", func(s string) error {
		if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
			return fmt.Errorf("owner id must be a number")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(val), 10, 64)
}

// PromptAccountNumber asks for an explicit account number; empty input
// means one will be generated.
func PromptAccountNumber() (int64, error) {
	val, err := PromptInput("Account number (leave empty to generate)", "", validation.ValidateAccountNumber)
	if err != nil {
		return 0, err
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, nil
	}
	return strconv.ParseInt(val, 10, 64)
}

// PromptInitialBalance asks for the opening balance, defaulting to zero.
func PromptInitialBalance() (string, error) {
	val, err := PromptInput("Initial balance", "0", validation.ValidateInitialBalance)
	if err != nil {
		return "", err
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return "0", nil
	}
	return val, nil
}

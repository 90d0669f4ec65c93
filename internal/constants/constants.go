package constants

const (
	// Date layout accepted by the history date filters.
	DateFormat = "2006-01-02"

	// Account numbers are ten digits, never starting with zero.
	AccountNumberDigits = 10
)

package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Trip passcodes are short shared secrets that gate edit access to a trip.
// They are stored hashed like passwords; an empty passcode means the trip is
// unprotected and VerifyPasscode always succeeds.

// HashPasscode returns the bcrypt hash of a trip passcode, or the empty
// string for an empty passcode.
func HashPasscode(passcode string) (string, error) {
	if passcode == "" {
		return "", nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}
	return string(hashed), nil
}

// VerifyPasscode reports whether the entered passcode matches the stored
// hash. A trip without a passcode grants access unconditionally.
func VerifyPasscode(entered, storedHash string) bool {
	if storedHash == "" {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(entered)) == nil
}

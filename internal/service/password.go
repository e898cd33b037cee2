package service

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/Yasheenyash33/training-tracker-Dash/pkg/errors"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past this many bytes.
	maxPasswordBytes = 72
)

// bcryptCost is lowered by tests.
var bcryptCost = bcrypt.DefaultCost

// unusablePassword never matches a bcrypt comparison.
const unusablePassword = "!"

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password12": {}, "password123": {},
	"passw0rd": {}, "p@ssw0rd": {}, "12345678": {}, "123456789": {},
	"1234567890": {}, "87654321": {}, "11111111": {}, "00000000": {},
	"qwerty12": {}, "qwerty123": {}, "qwertyuiop": {}, "asdfghjkl": {},
	"iloveyou": {}, "admin123": {}, "administrator": {}, "letmein1": {},
	"welcome1": {}, "welcome123": {}, "abc12345": {}, "abcd1234": {},
	"football": {}, "baseball": {}, "sunshine": {}, "princess": {},
	"trustno1": {}, "superman": {}, "starwars": {}, "whatever": {},
	"monkey123": {}, "dragon123": {}, "master123": {}, "changeme": {},
	"computer": {}, "internet": {}, "1q2w3e4r": {}, "zaq12wsx": {},
}

// validatePassword applies the strength policy. The failure is reported on
// field.
func validatePassword(field, password, username string) error {
	var problems []string

	if len([]rune(password)) < minPasswordLength {
		problems = append(problems, "This password is too short. It must contain at least 8 characters.")
	}
	if len(password) > maxPasswordBytes {
		problems = append(problems, "Ensure this field has no more than 72 bytes.")
	}
	if password != "" && strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) == -1 {
		problems = append(problems, "This password is entirely numeric.")
	}
	if _, common := commonPasswords[strings.ToLower(password)]; common {
		problems = append(problems, "This password is too common.")
	}
	if username != "" && strings.Contains(strings.ToLower(password), strings.ToLower(username)) {
		problems = append(problems, "The password is too similar to the username.")
	}

	if len(problems) == 0 {
		return nil
	}
	return apperrors.NewFieldError(field, strings.Join(problems, " "))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

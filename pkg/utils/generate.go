package utils

import (
	"math/rand"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUIDString() string {
	return uuid.New().String()
}

// ==================== CUSTOMER ID ====================

const (
	customerIDLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	customerIDDigits  = "0123456789"
)

// GenerateCustomerID creates a short human-readable customer code.
// Format: GT-ABC123 (3 uppercase letters, 3 digits).
func GenerateCustomerID() string {
	buf := make([]byte, 0, 9)
	buf = append(buf, 'G', 'T', '-')
	for i := 0; i < 3; i++ {
		buf = append(buf, customerIDLetters[rand.Intn(len(customerIDLetters))])
	}
	for i := 0; i < 3; i++ {
		buf = append(buf, customerIDDigits[rand.Intn(len(customerIDDigits))])
	}
	return string(buf)
}

package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kanwar911/BTP-case-craft/pkg/errors"
)

// PaymentInfo carries the card fields submitted at checkout.
type PaymentInfo struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
	CVC            string `json:"cvc"`
}

// Test card numbers recognized by the mock payment validator.
const (
	testCardVisa     = "4111111111111111"
	testCardStripe   = "4242424242424242"
	testCardDeclined = "4000000000000002"
)

var (
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvcPattern    = regexp.MustCompile(`^\d{3,4}$`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
)

// ValidatePayment runs the mock card validation pipeline. The first failing
// check short-circuits with a descriptive message; no partial order is
// created on failure. The reserved decline card is rejected even when every
// field is otherwise valid.
func ValidatePayment(p PaymentInfo, now time.Time) error {
	cardNumber := strings.ReplaceAll(p.CardNumber, " ", "")

	if len(cardNumber) < 13 || !digitsOnly.MatchString(cardNumber) {
		return &errors.ErrValidation{Message: "Invalid card number"}
	}

	if len(strings.TrimSpace(p.CardholderName)) < 3 {
		return &errors.ErrValidation{Message: "Invalid cardholder name"}
	}

	if !expiryPattern.MatchString(p.ExpiryDate) {
		return &errors.ErrValidation{Message: "Invalid expiry date format (MM/YY required)"}
	}

	if !cvcPattern.MatchString(p.CVC) {
		return &errors.ErrValidation{Message: "Invalid CVC code"}
	}

	parts := strings.SplitN(p.ExpiryDate, "/", 2)
	expMonth, _ := strconv.Atoi(parts[0])
	expYear, _ := strconv.Atoi(parts[1])
	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	if expYear < currentYear || (expYear == currentYear && expMonth < currentMonth) {
		return &errors.ErrValidation{Message: "Card is expired"}
	}

	switch cardNumber {
	case testCardVisa, testCardStripe:
		// Known test cards that always succeed
	case testCardDeclined:
		return &errors.ErrValidation{Message: "Card declined"}
	}

	return nil
}

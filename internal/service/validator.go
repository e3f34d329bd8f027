package service

import (
	"errors"
	"strings"
)

// ErrValidation marks caller-input failures so handlers can tell them apart
// from infrastructure errors.
var ErrValidation = errors.New("validation failed")

// IsValidVoucherCode reports whether code is a 16-character voucher starting
// with "ESHOP" and containing exactly 8 digits.
func IsValidVoucherCode(code string) bool {
	if len(code) != 16 {
		return false
	}
	if !strings.HasPrefix(code, "ESHOP") {
		return false
	}
	digits := 0
	for _, c := range code {
		if c >= '0' && c <= '9' {
			digits++
		}
	}
	return digits == 8
}

// IsValidBankTransferData reports whether data carries a non-blank bankName
// and a non-empty referenceCode.
func IsValidBankTransferData(data map[string]string) bool {
	if data == nil {
		return false
	}
	if strings.TrimSpace(data["bankName"]) == "" {
		return false
	}
	return data["referenceCode"] != ""
}

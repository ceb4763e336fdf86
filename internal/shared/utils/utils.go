package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ParseStringToUUID trả về uuid.Nil nếu chuỗi không phải UUID hợp lệ
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// TrimStringPtr trims the pointed-to string. Nil stays nil.
func TrimStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// EmptyToNil turns a blank optional string into nil so it is not stored.
func EmptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return TrimStringPtr(s)
}

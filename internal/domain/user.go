package domain

import "time"

// User represents a registered parQR account.
// Accounts are phone-based: the phone number is the only credential-like
// identifier, the user code and QR code id are public scan/lookup handles.
type User struct {
	ID               int64
	SignupCountryISO string
	PhoneNumber      string // international format, e.g. +821012345678
	UserCode         string // 8-char alphanumeric public handle
	QRCodeID         string // QR_XXXXXXXX scan token

	ProfileDisplayName *string
	ProfileBio         *string
	ProfileDeepLink    *string

	CreatedAt time.Time
}

// MaskedPhoneNumber returns the phone number with the middle digits hidden,
// suitable for public profile responses.
func (u *User) MaskedPhoneNumber() string {
	if len(u.PhoneNumber) < 7 {
		return "***"
	}
	return u.PhoneNumber[:5] + "****" + u.PhoneNumber[len(u.PhoneNumber)-2:]
}

// DisplayNameOrCode returns the display name if the user has set one,
// otherwise the user code.
func (u *User) DisplayNameOrCode() string {
	if u.ProfileDisplayName != nil && *u.ProfileDisplayName != "" {
		return *u.ProfileDisplayName
	}
	return u.UserCode
}

package domain

import "errors"

// User code format
const (
	UserCodeLength   = 8
	UserCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// QR code id format: QR_ + first 8 uppercase hex chars of a SHA-256 digest
const (
	QRCodePrefix     = "QR_"
	QRCodeHashLength = 8
)

// Korean mobile phone format constants.
// Local form is 010XXXXXXXX (11 digits), stored in international form +8210XXXXXXXX.
const (
	KoreanMobilePrefix      = "010"
	KoreanMobileLocalDigits = 11
	KoreanCountryCode       = "+82"
)

// License plate format: 3 digits + one plate syllable + 4 digits
const (
	PlatePrefixDigits = 3
	PlateSuffixDigits = 4
)

// PlateSyllables — the 42 Hangul syllables permitted on license plates
var PlateSyllables = []rune{
	'가', '나', '다', '라', '마',
	'차', '카', '타', '파', '하',
	'거', '너', '더', '러', '머',
	'버', '서', '어', '저', '처',
	'커', '터', '퍼', '허',
	'고', '노', '도', '로', '모',
	'보', '소', '오', '조', '초',
	'코', '토', '포', '호',
	'구', '누', '두', '루',
}

var plateSyllableSet = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(PlateSyllables))
	for _, r := range PlateSyllables {
		set[r] = struct{}{}
	}
	return set
}()

// Domain validation errors
var (
	ErrInvalidPhoneNumber  = errors.New("domain: invalid phone number")
	ErrInvalidLicensePlate = errors.New("domain: invalid license plate")
	ErrInvalidSessionTime  = errors.New("domain: end time must be after start time")
)

// IsValidLicensePlate reports whether the plate matches the DDD<syllable>DDDD
// format with a permitted plate syllable.
func IsValidLicensePlate(plate string) bool {
	runes := []rune(plate)
	if len(runes) != PlatePrefixDigits+1+PlateSuffixDigits {
		return false
	}
	for i := 0; i < PlatePrefixDigits; i++ {
		if runes[i] < '0' || runes[i] > '9' {
			return false
		}
	}
	if _, ok := plateSyllableSet[runes[PlatePrefixDigits]]; !ok {
		return false
	}
	for i := PlatePrefixDigits + 1; i < len(runes); i++ {
		if runes[i] < '0' || runes[i] > '9' {
			return false
		}
	}
	return true
}

// NormalizeKoreanPhone validates a local Korean mobile number (010XXXXXXXX)
// and converts it to international form (+8210XXXXXXXX).
func NormalizeKoreanPhone(local string) (string, error) {
	if len(local) != KoreanMobileLocalDigits {
		return "", ErrInvalidPhoneNumber
	}
	for _, r := range local {
		if r < '0' || r > '9' {
			return "", ErrInvalidPhoneNumber
		}
	}
	if local[:3] != KoreanMobilePrefix {
		return "", ErrInvalidPhoneNumber
	}
	// drop the leading zero, prepend the country code
	return KoreanCountryCode + local[1:], nil
}

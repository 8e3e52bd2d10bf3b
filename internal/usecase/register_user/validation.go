package register_user

import (
	"fmt"
	"strings"

	"github.com/parqr/parqr-backend/internal/domain"
)

// servicingCountries страны, в которых parQR принимает регистрации
var servicingCountries = map[string]struct{}{
	"KR": {},
	"US": {},
	"CA": {},
	"JP": {},
	"CN": {},
	"GB": {},
	"DE": {},
	"FR": {},
	"AU": {},
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PhoneNumber) == "" {
		return fmt.Errorf("%w: phoneNumber is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SignupCountryISO) == "" {
		return fmt.Errorf("%w: signupCountryISO is required", ErrInvalidInput)
	}
	if _, ok := servicingCountries[strings.ToUpper(req.SignupCountryISO)]; !ok {
		return ErrCountryNotServiced
	}
	return nil
}

// normalizePhone приводит номер к хранимому международному формату.
// Для Кореи действует строгая проверка мобильного формата 010XXXXXXXX;
// для остальных обслуживаемых стран — базовая проверка символов,
// номер сохраняется как есть.
func normalizePhone(phone, countryISO string) (string, error) {
	if strings.ToUpper(countryISO) == "KR" {
		normalized, err := domain.NormalizeKoreanPhone(phone)
		if err != nil {
			return "", ErrInvalidPhoneNumber
		}
		return normalized, nil
	}

	stripped := strings.NewReplacer("+", "", "-", "", " ", "").Replace(phone)
	if stripped == "" {
		return "", ErrInvalidPhoneNumber
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return "", ErrInvalidPhoneNumber
		}
	}
	return phone, nil
}

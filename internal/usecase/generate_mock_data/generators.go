package generate_mock_data

import (
	"fmt"
	mathrand "math/rand"
	"strings"

	"github.com/parqr/parqr-backend/internal/domain"
)

// Параметры распределений генератора
const (
	// completedProbability доля сессий, получающих end_time
	completedProbability = 0.7
	// noteProbability доля сессий с текстовой заметкой о месте парковки
	noteProbability = 0.4

	// sessionWindowDays окно старта сессии: последние 30 суток
	sessionWindowDays = 30

	// Длительность завершенной сессии: равномерно в [1ч, 8ч]
	minSessionMinutes = 60
	maxSessionMinutes = 480

	// maxGenerateAttempts бюджет попыток на один уникальный идентификатор.
	// Пространства идентификаторов (8 цифр телефона, 36^8 кодов, 10^7*42 номеров)
	// на практике не исчерпываются при дефолтных объемах.
	maxGenerateAttempts = 1000
)

// carCatalog фиксированная таблица марка → модели
var carCatalog = map[string][]string{
	"Toyota":        {"Camry", "Corolla", "Prius", "RAV4"},
	"Honda":         {"Civic", "Accord", "CR-V", "Pilot"},
	"Ford":          {"F-150", "Explorer", "Escape", "Mustang"},
	"BMW":           {"320i", "X3", "X5", "520d"},
	"Mercedes Benz": {"C220d", "E300", "GLC350", "S550"},
	"Audi":          {"A4", "Q5", "A6", "Q7"},
	"Hyundai":       {"Elantra", "Sonata", "Tucson", "Santa Fe"},
}

// carBrands детерминированный порядок обхода каталога
var carBrands = []string{"Toyota", "Honda", "Ford", "BMW", "Mercedes Benz", "Audi", "Hyundai"}

// parkingNotes реалистичные заметки о месте парковки
var parkingNotes = []string{
	"Section G8",
	"Level B3",
	"Near elevator",
	"Spot 47",
	"Level 2, Zone A",
	"Close to entrance",
	"Section C, Row 5",
	"Parking Structure 3",
	"Ground floor",
	"Level P1, near exit",
	"Visitor parking",
	"Row D, spot 23",
	"Near mall entrance",
	"Level -1, Section B",
}

// Границы сеульской агломерации для координат сессий
const (
	seoulLatMin = 37.4
	seoulLatMax = 37.7
	seoulLngMin = 126.8
	seoulLngMax = 127.2
)

// generatePhoneNumber генерирует корейский мобильный номер в международном
// формате (+8210XXXXXXXX), как это делает эндпоинт регистрации.
func generatePhoneNumber(rng *mathrand.Rand) string {
	local := fmt.Sprintf("%s%08d", domain.KoreanMobilePrefix, rng.Intn(100000000))
	normalized, err := domain.NormalizeKoreanPhone(local)
	if err != nil {
		// по построению недостижимо: local всегда 11 цифр с префиксом 010
		panic(err)
	}
	return normalized
}

// generateLicensePlate генерирует госномер формата DDD<слог>DDDD равномерным
// выбором цифр и слога из допустимого набора.
func generateLicensePlate(rng *mathrand.Rand) string {
	var sb strings.Builder
	for i := 0; i < domain.PlatePrefixDigits; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}
	sb.WriteRune(domain.PlateSyllables[rng.Intn(len(domain.PlateSyllables))])
	for i := 0; i < domain.PlateSuffixDigits; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}
	return sb.String()
}

// randomCoordinates возвращает координаты равномерно внутри сеульского бокса
func randomCoordinates(rng *mathrand.Rand) (lat, lng float64) {
	lat = seoulLatMin + rng.Float64()*(seoulLatMax-seoulLatMin)
	lng = seoulLngMin + rng.Float64()*(seoulLngMax-seoulLngMin)
	return lat, lng
}

// randomCarModel возвращает случайную пару марка/модель из каталога
func randomCarModel(rng *mathrand.Rand) (brand, model string) {
	brand = carBrands[rng.Intn(len(carBrands))]
	models := carCatalog[brand]
	model = models[rng.Intn(len(models))]
	return brand, model
}

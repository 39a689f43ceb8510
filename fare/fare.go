package fare

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned when a fare configuration violates its
// invariants. Invalid configs are rejected at the edit boundary and never
// persisted.
var ErrInvalidConfig = errors.New("fare: invalid config")

// Config is the editable fare matrix. BaseFare covers trips up to
// BaseDistanceKm; each further kilometer (rounded up) adds PerKmRate.
type Config struct {
	BaseFare            float64 `json:"baseFare" yaml:"baseFare" validate:"gte=0"`
	BaseDistanceKm      float64 `json:"baseKm" yaml:"baseKm" validate:"gt=0"`
	PerKmRate           float64 `json:"perKmRate" yaml:"perKmRate" validate:"gte=0"`
	DiscountRatePercent float64 `json:"discountRatePercent" yaml:"discountRatePercent" validate:"gte=0,lte=100"`
}

// DefaultConfig returns the standard Tandang Sora jeepney fare matrix.
func DefaultConfig() Config {
	return Config{
		BaseFare:            13.00,
		BaseDistanceKm:      4,
		PerKmRate:           1.75,
		DiscountRatePercent: 20,
	}
}

var validate = validator.New()

// Validate checks the config invariants. All errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// DiscountClass is a rider category entitling a percentage fare reduction.
// Eligibility is self-declared at login and passed through unverified.
type DiscountClass string

const (
	DiscountNone          DiscountClass = "NONE"
	DiscountStudent       DiscountClass = "STUDENT"
	DiscountPWD           DiscountClass = "PWD"
	DiscountSeniorCitizen DiscountClass = "SENIOR_CITIZEN"
)

// ParseDiscountClass maps a free-form label to a DiscountClass, defaulting
// to DiscountNone for anything unrecognized.
func ParseDiscountClass(s string) DiscountClass {
	switch DiscountClass(s) {
	case DiscountStudent, DiscountPWD, DiscountSeniorCitizen:
		return DiscountClass(s)
	}
	return DiscountNone
}

// Compute returns the jeepney fare for a ride of distanceMeters.
//
// Distances at or below the base distance pay the flat base fare. Beyond
// that, partial kilometers are billed as full kilometers, per commuter-fare
// convention. A non-positive distance yields a zero fare (defensive floor,
// not a free ride). The function is pure; callers must validate cfg first.
func Compute(distanceMeters float64, cfg Config, class DiscountClass) float64 {
	if distanceMeters <= 0 {
		return 0
	}

	baseMeters := cfg.BaseDistanceKm * 1000
	amount := cfg.BaseFare
	if distanceMeters > baseMeters {
		extraKm := math.Ceil((distanceMeters - baseMeters) / 1000)
		amount += extraKm * cfg.PerKmRate
	}

	if class != DiscountNone {
		amount -= amount * (cfg.DiscountRatePercent / 100)
	}
	return amount
}

// FormatPHP renders an amount as Philippine pesos with two decimal places.
// Formatting is a presentation concern; Compute returns the raw amount.
func FormatPHP(amount float64) string {
	return fmt.Sprintf("₱%.2f", amount)
}

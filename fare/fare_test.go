package fare

import (
	"errors"
	"testing"
)

func TestCompute(t *testing.T) {
	cfg := Config{BaseFare: 13.00, BaseDistanceKm: 4, PerKmRate: 1.75, DiscountRatePercent: 20}

	tests := []struct {
		name           string
		distanceMeters float64
		class          DiscountClass
		want           string
	}{
		{"zero distance", 0, DiscountNone, "₱0.00"},
		{"negative distance", -500, DiscountNone, "₱0.00"},
		{"within base distance", 3000, DiscountNone, "₱13.00"},
		{"exactly base distance", 4000, DiscountNone, "₱13.00"},
		{"partial km billed as full", 5200, DiscountNone, "₱16.50"},
		{"exact km boundary", 6000, DiscountNone, "₱16.50"},
		{"one meter past boundary", 6001, DiscountNone, "₱18.25"},
		{"student discount", 5200, DiscountStudent, "₱13.20"},
		{"pwd discount", 5200, DiscountPWD, "₱13.20"},
		{"senior discount on base fare", 3000, DiscountSeniorCitizen, "₱10.40"},
		{"zero distance ignores discount", 0, DiscountStudent, "₱0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPHP(Compute(tt.distanceMeters, cfg, tt.class))
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestComputeMonotonicSteps(t *testing.T) {
	cfg := DefaultConfig()
	prev := Compute(4000, cfg, DiscountNone)
	for m := 4001.0; m <= 20000; m += 500 {
		cur := Compute(m, cfg, DiscountNone)
		if cur < prev {
			t.Fatalf("fare decreased from %f to %f at %fm", prev, cur, m)
		}
		// Beyond the base distance every fare is base + whole-km multiples.
		extra := cur - cfg.BaseFare
		steps := extra / cfg.PerKmRate
		if steps != float64(int(steps)) {
			t.Fatalf("fare %f at %fm is not a whole-km step", cur, m)
		}
		prev = cur
	}
}

func TestComputeIsPure(t *testing.T) {
	cfg := DefaultConfig()
	first := Compute(5200, cfg, DiscountStudent)
	for i := 0; i < 10; i++ {
		if got := Compute(5200, cfg, DiscountStudent); got != first {
			t.Fatalf("recomputation changed result: %f vs %f", got, first)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults are valid", DefaultConfig(), false},
		{"zero base fare allowed", Config{BaseFare: 0, BaseDistanceKm: 1, PerKmRate: 0, DiscountRatePercent: 0}, false},
		{"negative base fare", Config{BaseFare: -1, BaseDistanceKm: 4, PerKmRate: 1.75, DiscountRatePercent: 20}, true},
		{"zero base distance", Config{BaseFare: 13, BaseDistanceKm: 0, PerKmRate: 1.75, DiscountRatePercent: 20}, true},
		{"negative per km rate", Config{BaseFare: 13, BaseDistanceKm: 4, PerKmRate: -0.5, DiscountRatePercent: 20}, true},
		{"discount over 100", Config{BaseFare: 13, BaseDistanceKm: 4, PerKmRate: 1.75, DiscountRatePercent: 101}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseDiscountClass(t *testing.T) {
	if got := ParseDiscountClass("STUDENT"); got != DiscountStudent {
		t.Errorf("expected STUDENT, got %s", got)
	}
	if got := ParseDiscountClass("gibberish"); got != DiscountNone {
		t.Errorf("expected NONE for unknown label, got %s", got)
	}
	if got := ParseDiscountClass(""); got != DiscountNone {
		t.Errorf("expected NONE for empty label, got %s", got)
	}
}

package commutewise

import "testing"

func TestEstimateWalkingMinutes(t *testing.T) {
	tests := []struct {
		name           string
		distanceMeters float64
		want           int
	}{
		{"zero", 0, 0},
		{"negative", -10, 0},
		{"rounds up tiny distance", 1, 1},
		{"250 meters", 250, 4},
		{"exact minute boundary", 160, 2},
		{"just past boundary", 161, 3},
		{"one hour of walking", 4800, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateWalkingMinutes(tt.distanceMeters); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFormatWalkingTime(t *testing.T) {
	tests := []struct {
		name           string
		distanceMeters float64
		want           string
	}{
		{"zero distance", 0, "0 min"},
		{"negative distance", -5, "0 min"},
		{"short walk", 250, "4 min"},
		{"under an hour", 4720, "59 min"},
		{"exactly an hour", 4800, "1 hr 0 min"},
		{"over an hour", 10000, "2 hr 5 min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWalkingTime(tt.distanceMeters); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestWalkingTimeNeverZeroForPositiveDistance(t *testing.T) {
	for _, m := range []float64{0.1, 1, 79, 80, 81, 500} {
		if got := FormatWalkingTime(m); got == "0 min" {
			t.Errorf("positive distance %f estimated as 0 min", m)
		}
	}
}

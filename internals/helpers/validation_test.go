package helper

import "testing"

type samplePayload struct {
	Name      string   `json:"name" validate:"required,max=10"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	Score     int      `json:"score" validate:"omitempty,min=1"`
}

func f64(v float64) *float64 { return &v }

func TestValidateStructOK(t *testing.T) {
	p := samplePayload{Name: "Budi", Latitude: f64(-6.2), Longitude: f64(106.8), Score: 5}
	if msg := ValidateStruct(p); msg != "" {
		t.Fatalf("valid payload rejected: %q", msg)
	}
}

func TestValidateStructMessages(t *testing.T) {
	cases := []struct {
		name string
		in   samplePayload
		want string
	}{
		{"required", samplePayload{}, "name cannot be empty"},
		{"max", samplePayload{Name: "nama yang terlalu panjang"}, "name must be at most 10"},
		{"latitude", samplePayload{Name: "Budi", Latitude: f64(123)}, "latitude must be a valid latitude"},
		{"longitude", samplePayload{Name: "Budi", Longitude: f64(222)}, "longitude must be a valid longitude"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if msg := ValidateStruct(tc.in); msg != tc.want {
				t.Fatalf("got %q, want %q", msg, tc.want)
			}
		})
	}
}

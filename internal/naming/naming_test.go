package naming

import "testing"

func TestPad(t *testing.T) {
	tests := []struct {
		n, size int
		want    string
	}{
		{1, 2, "001"},
		{50, 4, "00050"},
		{2048, 2, "2048"},
		{0, 3, "0000"},
		{7, 0, "7"},
		{999, 2, "999"},
	}
	for _, tt := range tests {
		if got := Pad(tt.n, tt.size); got != tt.want {
			t.Errorf("Pad(%d, %d) = %q, want %q", tt.n, tt.size, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		original string
		policy   Policy
		index    int
		want     string
		wantErr  bool
	}{
		{"same keeps name", "holiday.jpeg", Same, 4, "holiday.jpeg", false},
		{"slug behaves like same", "holiday.png", Slug, 1, "holiday.png", false},
		{"numerical jpeg becomes jpg", "holiday.jpeg", Numerical, 1, "001.jpg", false},
		{"numerical png", "b.png", Numerical, 12, "012.png", false},
		{"numerical keeps jpg", "a.jpg", Numerical, 0, "000.jpg", false},
		{"numerical without extension", "README", Numerical, 0, "", true},
		{"numerical dot only prefix", ".png", Numerical, 0, "", true},
		{"unknown policy", "a.jpg", Policy("kebab"), 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Name(tt.original, tt.policy, tt.index)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Name() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNumericalMatchesPad(t *testing.T) {
	for i := 0; i < 1200; i += 37 {
		// three digits minimum, more once the index needs them
		got, err := Name("x.jpeg", Numerical, i)
		if err != nil {
			t.Fatalf("Name: %v", err)
		}
		if want := Pad(i, 2) + ".jpg"; got != want {
			t.Fatalf("Name(x.jpeg, %d) = %q, want %q", i, got, want)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"same", Same, false},
		{"numerical", Numerical, false},
		{"Numerical", Numerical, false},
		{"slug", Slug, false},
		{"", Same, false},
		{"random", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

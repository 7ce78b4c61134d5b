package language

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Verdict
		wantErr bool
	}{
		{"zh", Chinese, false},
		{"ZHO", Chinese, false},
		{"chi", Chinese, false},
		{"Chinese", Chinese, false},
		{"中文", Chinese, false},
		{"zh_CN", Chinese, false},
		{"en", English, false},
		{"eng", English, false},
		{" english ", English, false},
		{"en-US", English, false},
		{"fr", Unknown, true},
		{"bilingual", Unknown, true},
		{"", Unknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToISO2(t *testing.T) {
	tests := []struct {
		input Verdict
		want  string
	}{
		{Chinese, "zh"},
		{English, "en"},
		{Bilingual, ""},
		{Unknown, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := ToISO2(tt.input); got != tt.want {
				t.Errorf("ToISO2(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input Verdict
		want  string
	}{
		{Chinese, "Chinese"},
		{English, "English"},
		{Bilingual, "Bilingual"},
		{Unknown, "Unknown"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := DisplayName(tt.input); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVerdictOther(t *testing.T) {
	if Chinese.Other() != English || English.Other() != Chinese {
		t.Fatal("expected chinese and english to be opposites")
	}
	if Bilingual.Other() != Unknown || Unknown.Other() != Unknown {
		t.Fatal("expected non-monolingual verdicts to have no opposite")
	}
}

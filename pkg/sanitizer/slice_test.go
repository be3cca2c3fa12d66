package sanitizer

import (
	"reflect"
	"testing"
)

func TestNormalizeStringSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "trim and collapse",
			input: []string{"  Hotel   pickup ", "Lunch"},
			want:  []string{"Hotel pickup", "Lunch"},
		},
		{
			name:  "remove duplicates keeping first",
			input: []string{"Lunch", "Snorkel gear", "Lunch"},
			want:  []string{"Lunch", "Snorkel gear"},
		},
		{
			name:  "filter empty strings",
			input: []string{"Lunch", "", "  ", "Guide"},
			want:  []string{"Lunch", "Guide"},
		},
		{
			name:  "empty input",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStringSlice(tt.input, TrimAndNormalize)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeStringSlice(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeItems(t *testing.T) {
	if got := NormalizeItems(nil); got != nil {
		t.Errorf("NormalizeItems(nil) = %v, want nil", got)
	}

	got := NormalizeItems([]string{" Flights ", "Travel insurance", ""})
	want := []string{"Flights", "Travel insurance"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeItems() = %v, want %v", got, want)
	}
}

package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColorArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"add", NewColor(0.9, 0.6, 0.75).Add(NewColor(0.7, 0.1, 0.25)), NewColor(1.6, 0.7, 1.0)},
		{"subtract", NewColor(0.9, 0.6, 0.75).Subtract(NewColor(0.7, 0.1, 0.25)), NewColor(0.2, 0.5, 0.5)},
		{"scale", NewColor(0.2, 0.3, 0.4).Scale(2), NewColor(0.4, 0.6, 0.8)},
		{"hadamard", NewColor(1, 0.2, 0.4).Hadamard(NewColor(0.9, 1, 0.1)), NewColor(0.9, 0.2, 0.04)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got, approx); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

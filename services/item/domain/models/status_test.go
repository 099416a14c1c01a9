package models

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"NEW", StatusNew, false},
		{"PROCESSED", StatusProcessed, false},
		{"CANCELLED", StatusCancelled, false},
		{"new", "", true},
		{"DONE", "", true},
		{"", "", true},
		{" NEW", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStatus(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

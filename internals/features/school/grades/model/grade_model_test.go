package model

import "testing"

func TestLetterFromMarks(t *testing.T) {
	tests := []struct {
		name  string
		marks int
		want  string
	}{
		{name: "perfect score", marks: 100, want: "A+"},
		{name: "lower A+ bound", marks: 90, want: "A+"},
		{name: "upper A bound", marks: 89, want: "A"},
		{name: "mid A", marks: 85, want: "A"},
		{name: "lower A bound", marks: 80, want: "A"},
		{name: "B", marks: 72, want: "B"},
		{name: "lower B bound", marks: 70, want: "B"},
		{name: "C", marks: 60, want: "C"},
		{name: "D", marks: 50, want: "D"},
		{name: "upper F bound", marks: 49, want: "F"},
		{name: "fail", marks: 40, want: "F"},
		{name: "zero", marks: 0, want: "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LetterFromMarks(tt.marks); got != tt.want {
				t.Errorf("LetterFromMarks(%d) = %q, want %q", tt.marks, got, tt.want)
			}
		})
	}
}

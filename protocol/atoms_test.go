package protocol

import (
	"reflect"
	"testing"
)

func TestSplitAtoms(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain atoms",
			line: "wn test",
			want: []string{"wn", "test"},
		},
		{
			name: "quoted run is one atom",
			line: `151 "test" wn "WordNet (r) 3.0"`,
			want: []string{"151", "test", "wn", "WordNet (r) 3.0"},
		},
		{
			name: "quoted phrase with spaces",
			line: `wn "ice cream"`,
			want: []string{"wn", "ice cream"},
		},
		{
			name: "repeated separators",
			line: "foldoc   Free  On-line",
			want: []string{"foldoc", "Free", "On-line"},
		},
		{
			name: "tabs as separators",
			line: "wn\tWordNet",
			want: []string{"wn", "WordNet"},
		},
		{
			name: "unterminated quote takes the rest",
			line: `wn "ice cream`,
			want: []string{"wn", "ice cream"},
		},
		{
			name: "empty quotes",
			line: `wn ""`,
			want: []string{"wn", ""},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "only spaces",
			line: "   ",
			want: nil,
		},
		{
			name: "atom with embedded period",
			line: "110 2 databases present.",
			want: []string{"110", "2", "databases", "present."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitAtoms(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitAtoms(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

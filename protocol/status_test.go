package protocol

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Status
		wantErr bool
	}{
		{
			name: "greeting",
			line: "220 dict.org dictd ready",
			want: Status{Code: 220, Message: "dict.org dictd ready"},
		},
		{
			name: "no match",
			line: "552 no match",
			want: Status{Code: 552, Message: "no match"},
		},
		{
			name: "code only",
			line: "250",
			want: Status{Code: 250},
		},
		{
			name: "empty text after space",
			line: "250 ",
			want: Status{Code: 250, Message: ""},
		},
		{
			name:    "too short",
			line:    "25",
			wantErr: true,
		},
		{
			name:    "non-digit code",
			line:    "2x0 ok",
			wantErr: true,
		},
		{
			name:    "missing separator",
			line:    "250ok",
			wantErr: true,
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: true,
		},
		{
			name:    "text block line",
			line:    "n. A trial.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStatus(%q) = %v, want error", tt.line, got)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Errorf("ParseStatus(%q) error = %T, want *ParseError", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestStatusClasses(t *testing.T) {
	if !(Status{Code: 150}).IsPreliminary() {
		t.Error("150 should be preliminary")
	}
	if !(Status{Code: 250}).IsPositiveCompletion() {
		t.Error("250 should be positive completion")
	}
	if !(Status{Code: 220}).IsPositiveCompletion() {
		t.Error("220 should be positive completion")
	}
	if !(Status{Code: 420}).IsTransientFailure() {
		t.Error("420 should be transient failure")
	}
	if !(Status{Code: 552}).IsPermanentFailure() {
		t.Error("552 should be permanent failure")
	}
	if (Status{Code: 151}).IsPositiveCompletion() {
		t.Error("151 should not be positive completion")
	}
}

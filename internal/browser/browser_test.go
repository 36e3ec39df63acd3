package browser

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://example.com/article", false},
		{"http://example.com", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"https://", true},
		{"", true},
	}

	for _, tt := range tests {
		err := Validate(tt.url)
		if tt.wantErr && err == nil {
			t.Errorf("Validate(%q): expected error, got nil", tt.url)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Validate(%q): unexpected error: %v", tt.url, err)
		}
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "open https://example.com"},
		{"linux", "xdg-open https://example.com"},
		{"freebsd", "xdg-open https://example.com"},
		{"windows", "rundll32 url.dll,FileProtocolHandler https://example.com"},
	}
	for _, tt := range tests {
		cmd := Command(tt.goos, "https://example.com")
		if got := strings.Join(cmd.Args, " "); got != tt.want {
			t.Errorf("Command(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestOpenRejectsBeforeLaunch(t *testing.T) {
	if err := Open("javascript:alert(1)"); err == nil {
		t.Error("expected error for javascript URL")
	}
}

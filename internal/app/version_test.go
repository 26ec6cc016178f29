package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"long flag", []string{"--version"}, true},
		{"short flag", []string{"-V"}, true},
		{"single dash", []string{"-version"}, true},
		{"anywhere in args", []string{"-server", "--version"}, true},
		{"absent", []string{"-op", "add", "1", "2"}, false},
		{"empty", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasVersionFlag(tc.args); got != tc.want {
				t.Errorf("HasVersionFlag(%v) = %v, want %v", tc.args, got, tc.want)
			}
		})
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)

	got := out.String()
	for _, want := range []string{"omnicalc", "Commit:", "Go version:", "OS/Arch:"} {
		if !strings.Contains(got, want) {
			t.Errorf("version output missing %q:\n%s", want, got)
		}
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version == "" || info.GoVersion == "" || info.OS == "" {
		t.Errorf("incomplete version info: %+v", info)
	}
}

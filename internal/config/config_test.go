package config

import (
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/photos/incoming", "/photos/incoming"},
		{"single trailing slash", "/photos/incoming/", "/photos/incoming"},
		{"multiple trailing slashes", "/photos/incoming///", "/photos/incoming"},
		{"root path", "/", "/"},
		{"relative path", "incoming", "incoming"},
		{"relative with slash", "incoming/", "incoming"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_RequiredPaths(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		dest    string
		check   bool
		wantErr bool
	}{
		{"both set", "/in", "/out", false, false},
		{"missing source", "", "/out", false, true},
		{"missing dest", "/in", "", false, true},
		{"both missing", "", "", false, true},
		{"check mode skips paths", "", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SourceDir = tt.source
			cfg.DestDir = tt.dest
			cfg.CheckOnly = tt.check
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "sometimes", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true // skip path requirement
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		dest    string
		wantErr bool
	}{
		{"sibling dirs", "/photos/in", "/photos/out", false},
		{"dest equals source", "/photos/in", "/photos/in", true},
		{"dest inside source", "/photos/in", "/photos/in/sorted", true},
		{"dest inside nested source", "/a/b", "/a/b/c/d", true},
		{"shared prefix but not nested", "/photos/in", "/photos/inbox", false},
		{"source inside dest is allowed", "/photos/out/in", "/photos/out", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ValidatePaths(tt.source, tt.dest)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v",
					tt.source, tt.dest, err, tt.wantErr)
			}
		})
	}
}

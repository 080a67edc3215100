package directory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSnapshot = `
realm:
  base_url: https://realm.example/
  capability_level: 200
users:
  - id: 13313
    full_name: Chris Bobbe
  - id: 5
    full_name: Ada Lovelace
streams:
  - id: 48
    name: mobile
  - id: 7
    name: general chat
`

func TestParse(t *testing.T) {
	snap, err := Parse([]byte(validSnapshot))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := snap.Realm.BaseURL.String(); got != "https://realm.example/" {
		t.Errorf("base URL = %q, want %q", got, "https://realm.example/")
	}
	if snap.Realm.CapabilityLevel != 200 {
		t.Errorf("capability level = %d, want 200", snap.Realm.CapabilityLevel)
	}
	if got := snap.Users[13313].FullName; got != "Chris Bobbe" {
		t.Errorf("user 13313 = %q, want %q", got, "Chris Bobbe")
	}
	if len(snap.Users) != 2 {
		t.Errorf("got %d users, want 2", len(snap.Users))
	}
	if got := snap.Streams[7]; got != "general chat" {
		t.Errorf("stream 7 = %q, want %q", got, "general chat")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing base url",
			yaml:    "realm:\n  capability_level: 1\n",
			wantErr: "base_url is required",
		},
		{
			name:    "relative base url",
			yaml:    "realm:\n  base_url: realm.example/chat\n",
			wantErr: "not absolute",
		},
		{
			name:    "negative capability level",
			yaml:    "realm:\n  base_url: https://realm.example/\n  capability_level: -1\n",
			wantErr: "is negative",
		},
		{
			name: "duplicate user id",
			yaml: "realm:\n  base_url: https://realm.example/\nusers:\n" +
				"  - {id: 5, full_name: A}\n  - {id: 5, full_name: B}\n",
			wantErr: "duplicate id 5",
		},
		{
			name:    "user without name",
			yaml:    "realm:\n  base_url: https://realm.example/\nusers:\n  - {id: 5}\n",
			wantErr: "full_name is required",
		},
		{
			name:    "stream without positive id",
			yaml:    "realm:\n  base_url: https://realm.example/\nstreams:\n  - {id: 0, name: x}\n",
			wantErr: "not positive",
		},
		{
			name:    "not yaml",
			yaml:    "{{{",
			wantErr: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := os.WriteFile(path, []byte(validSnapshot), 0o600); err != nil {
		t.Fatal(err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Streams) != 2 {
		t.Errorf("got %d streams, want 2", len(snap.Streams))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

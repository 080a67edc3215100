// Package directory loads read-only realm snapshots: the realm's base
// URL and capability level plus the user and stream directories the
// compose and narrow packages consume. Snapshots come from YAML files
// exported by whatever owns the live data; this package never talks to
// a server.
package directory

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/veldtchat/veldt/pkg/chat"
)

// Snapshot is the loaded, validated view of a realm's collaborator data.
type Snapshot struct {
	Realm   chat.Realm
	Users   chat.UserDirectory
	Streams chat.StreamDirectory
}

// file is the YAML schema of a snapshot file.
type file struct {
	Realm struct {
		BaseURL         string `yaml:"base_url"`
		CapabilityLevel int    `yaml:"capability_level"`
	} `yaml:"realm"`
	Users []struct {
		ID       int64  `yaml:"id"`
		FullName string `yaml:"full_name"`
	} `yaml:"users"`
	Streams []struct {
		ID   int64  `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"streams"`
}

// Load reads and validates a snapshot file.
func Load(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("directory: reading %s: %w", path, err)
	}
	snap, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("directory: parsing %s: %w", path, err)
	}
	return snap, nil
}

// Parse parses and validates raw YAML snapshot bytes.
func Parse(raw []byte) (*Snapshot, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	var errs []error

	if f.Realm.BaseURL == "" {
		errs = append(errs, errors.New("realm.base_url is required"))
	}
	base, err := url.Parse(f.Realm.BaseURL)
	if err != nil {
		errs = append(errs, fmt.Errorf("realm.base_url: %w", err))
	} else if f.Realm.BaseURL != "" && !base.IsAbs() {
		errs = append(errs, fmt.Errorf("realm.base_url %q is not absolute", f.Realm.BaseURL))
	}
	if f.Realm.CapabilityLevel < 0 {
		errs = append(errs, fmt.Errorf("realm.capability_level %d is negative", f.Realm.CapabilityLevel))
	}

	users := make(chat.UserDirectory, len(f.Users))
	for i, u := range f.Users {
		if u.ID <= 0 {
			errs = append(errs, fmt.Errorf("users[%d]: id %d is not positive", i, u.ID))
			continue
		}
		if u.FullName == "" {
			errs = append(errs, fmt.Errorf("users[%d]: full_name is required", i))
			continue
		}
		if _, dup := users[u.ID]; dup {
			errs = append(errs, fmt.Errorf("users[%d]: duplicate id %d", i, u.ID))
			continue
		}
		users[u.ID] = chat.User{ID: u.ID, FullName: u.FullName}
	}

	streams := make(chat.StreamDirectory, len(f.Streams))
	for i, s := range f.Streams {
		if s.ID <= 0 {
			errs = append(errs, fmt.Errorf("streams[%d]: id %d is not positive", i, s.ID))
			continue
		}
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("streams[%d]: name is required", i))
			continue
		}
		if _, dup := streams[s.ID]; dup {
			errs = append(errs, fmt.Errorf("streams[%d]: duplicate id %d", i, s.ID))
			continue
		}
		streams[s.ID] = s.Name
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Snapshot{
		Realm:   chat.Realm{BaseURL: base, CapabilityLevel: f.Realm.CapabilityLevel},
		Users:   users,
		Streams: streams,
	}, nil
}

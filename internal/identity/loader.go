package identity

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/osse101/PitchBot_Go/internal/domain"
)

// fileEntry is one account as written in an identity file
type fileEntry struct {
	Name    string `yaml:"name"`
	QueryID string `yaml:"query_id"`
	Proxy   string `yaml:"proxy"`
}

type yamlFile struct {
	Identities []fileEntry `yaml:"identities"`
}

// LoadFile reads identities from path. The format is picked by extension:
// .yaml/.yml, .ini (one section per account) or anything else as plain text
// with one query id per line.
func LoadFile(path string) ([]domain.Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identities file: %w", err)
	}

	var entries []fileEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtYAML, ExtYML:
		entries, err = parseYAML(data)
	case ExtINI:
		entries, err = parseINI(data)
	default:
		entries, err = parseText(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return build(entries)
}

func parseYAML(data []byte) ([]fileEntry, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Identities, nil
}

func parseINI(data []byte) ([]fileEntry, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	var entries []fileEntry
	for _, section := range f.Sections() {
		if !section.HasKey(INIKeyQueryID) {
			continue
		}
		name := section.Name()
		if name == ini.DefaultSection {
			name = ""
		}
		entries = append(entries, fileEntry{
			Name:    name,
			QueryID: section.Key(INIKeyQueryID).String(),
			Proxy:   section.Key(INIKeyProxy).String(),
		})
	}
	return entries, nil
}

func parseText(data []byte) ([]fileEntry, error) {
	var entries []fileEntry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	// init data strings can exceed the default 64KB token limit
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, TextCommentPrefix) {
			continue
		}
		entries = append(entries, fileEntry{QueryID: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func build(entries []fileEntry) ([]domain.Identity, error) {
	if len(entries) == 0 {
		return nil, domain.ErrNoIdentities
	}

	seen := make(map[string]int, len(entries))
	names := make(map[string]bool, len(entries))
	identities := make([]domain.Identity, 0, len(entries))
	for i, e := range entries {
		id, err := New(e.QueryID, e.Name, e.Proxy)
		if err != nil {
			return nil, fmt.Errorf("identity #%d: %w", i+1, err)
		}
		if prev, ok := seen[id.QueryID]; ok {
			return nil, fmt.Errorf("%w: #%d repeats #%d", domain.ErrDuplicateIdentity, i+1, prev)
		}
		seen[id.QueryID] = i + 1
		// names key worker status and metric labels
		id.Name = uniqueName(id.Name, i+1, names)
		names[id.Name] = true
		identities = append(identities, id)
	}
	return identities, nil
}

// uniqueName returns name, or name-N with the smallest N >= suffix that is not taken
func uniqueName(name string, suffix int, taken map[string]bool) string {
	if !taken[name] {
		return name
	}
	for n := suffix; ; n++ {
		candidate := fmt.Sprintf("%s-%d", name, n)
		if !taken[candidate] {
			return candidate
		}
	}
}

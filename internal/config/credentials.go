package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// PointerFileName is the sibling file whose first line names an externally
// located credentials file.
const PointerFileName = "_keys_path.txt"

// relativeCandidates are checked in order after the pointer file, relative
// to the launch directory.
var relativeCandidates = []string{
	".env",
	filepath.Join("keys", ".env"),
	filepath.Join("secrets", ".env"),
}

// Entry is one KEY=VALUE pair read from a credentials file.
type Entry struct {
	Key   string
	Value string
}

// Candidate is one location in the credentials search order.
type Candidate struct {
	Path   string
	Source string // "pointer", "cwd", "keys", "secrets"
	Exists bool
}

// Candidates returns the credentials search order for dir. The pointer
// candidate is only present when _keys_path.txt exists and names a path.
func Candidates(dir string) []Candidate {
	var out []Candidate

	if target := readPointerFile(filepath.Join(dir, PointerFileName)); target != "" {
		out = append(out, Candidate{Path: target, Source: "pointer", Exists: fileExists(target)})
	}

	sources := []string{"cwd", "keys", "secrets"}
	for i, rel := range relativeCandidates {
		p := filepath.Join(dir, rel)
		out = append(out, Candidate{Path: p, Source: sources[i], Exists: fileExists(p)})
	}
	return out
}

// ResolveCredentialsPath returns the first existing candidate for dir. The
// second return is false when no candidate exists; that is an expected
// condition, not an error.
func ResolveCredentialsPath(dir string) (string, bool) {
	for _, c := range Candidates(dir) {
		if c.Exists {
			return c.Path, true
		}
		if c.Source == "pointer" {
			slog.Warn("credentials pointer target does not exist, trying next candidate",
				"pointer", filepath.Join(dir, PointerFileName), "target", c.Path)
		}
	}
	return "", false
}

// readPointerFile returns the trimmed first line of the pointer file, or ""
// when the file is absent or its first line is blank. Lines after the first
// are never read.
func readPointerFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// ParseEnvFile reads a .env-style credentials file into ordered entries.
//
// Blank lines and lines whose first non-space character is '#' are skipped,
// as are lines without '=' or with an empty key. The value is everything
// after the first '=' and may itself contain '='. One layer of surrounding
// double quotes is stripped; there is no escape processing and no
// multi-line support. Duplicate keys are kept in file order so that
// last-wins assignment happens at application time.
func ParseEnvFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		val = strings.TrimSpace(val)
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return entries, nil
}

// BuildEnviron overlays entries onto base and returns the slice to pass to
// exec.Cmd.Env. Later entries win over earlier ones and over same-named
// keys in base; the caller's own process environment is never touched.
func BuildEnviron(base []string, entries ...Entry) []string {
	out := make([]string, 0, len(base)+len(entries))
	index := make(map[string]int, len(base)+len(entries))

	set := func(key, kv string) {
		if i, ok := index[key]; ok {
			out[i] = kv
			return
		}
		index[key] = len(out)
		out = append(out, kv)
	}

	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		set(key, kv)
	}
	for _, e := range entries {
		set(e.Key, e.Key+"="+e.Value)
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

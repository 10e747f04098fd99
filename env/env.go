// Package env loads KEY=VALUE files into a string map with fallback to
// the ambient process environment.
package env

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedLine is returned when a non-comment line has no key or no
// = separator. Wrapped errors carry the line number.
var ErrMalformedLine = errors.New("env: malformed line")

type Env struct {
	values map[string]string
}

// Load reads the file at path. Missing files surface as a wrapped
// os.ErrNotExist so callers can distinguish them from parse failures.
func Load(path string) (*Env, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("env: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads KEY=VALUE pairs from r.
// 空行和 # 开头的整行注释跳过；第一个 = 分割键值，值里可以再出现 =；
// 值两侧成对的单引号或双引号会被剥掉
func Parse(r io.Reader) (*Env, error) {
	values := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx < 0 {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedLine, lineNo, line)
		}
		key := strings.TrimSpace(line[:idx])
		if key == "" {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedLine, lineNo, line)
		}
		values[key] = unquote(strings.TrimSpace(line[idx+1:]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("env: read: %w", err)
	}
	return &Env{values: values}, nil
}

// Get returns the loaded value for key, falling back to the process
// environment and then to def. A loaded empty string counts as set and
// does not fall through.
func (e *Env) Get(key string, def string) string {
	if v, ok := e.values[key]; ok {
		return v
	}
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// Lookup reports the value for key and whether it is set, checking the
// loaded file first and the process environment second.
func (e *Env) Lookup(key string) (string, bool) {
	if v, ok := e.values[key]; ok {
		return v, true
	}
	return os.LookupEnv(key)
}

// Has reports whether key is set in the file or the process environment.
func (e *Env) Has(key string) bool {
	_, ok := e.Lookup(key)
	return ok
}

// unquote strips one pair of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

package env

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantKV  map[string]string
		wantErr error
	}{
		{
			name:   "basic pairs",
			input:  "DB_HOST=localhost\nDB_PORT=3306\n",
			wantKV: map[string]string{"DB_HOST": "localhost", "DB_PORT": "3306"},
		},
		{
			name:   "comments and blank lines skipped",
			input:  "# top comment\n\nKEY=value\n   \n# another\n",
			wantKV: map[string]string{"KEY": "value"},
		},
		{
			// 第一个 = 分割，值里允许再出现 =
			name:   "value contains equals",
			input:  "DSN=user:pass@tcp(host)/db?parseTime=true",
			wantKV: map[string]string{"DSN": "user:pass@tcp(host)/db?parseTime=true"},
		},
		{
			name:   "double quotes stripped",
			input:  `NAME="hello world"`,
			wantKV: map[string]string{"NAME": "hello world"},
		},
		{
			name:   "single quotes stripped",
			input:  "NAME='hello'",
			wantKV: map[string]string{"NAME": "hello"},
		},
		{
			name:   "mismatched quotes kept",
			input:  `NAME="hello'`,
			wantKV: map[string]string{"NAME": `"hello'`},
		},
		{
			name:   "empty value",
			input:  "EMPTY=",
			wantKV: map[string]string{"EMPTY": ""},
		},
		{
			name:    "no separator",
			input:   "JUSTAKEY",
			wantErr: ErrMalformedLine,
		},
		{
			name:    "empty key",
			input:   "=value",
			wantErr: ErrMalformedLine,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := Parse(strings.NewReader(tc.input))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			for k, v := range tc.wantKV {
				got, ok := e.Lookup(k)
				assert.True(t, ok)
				assert.Equal(t, v, got)
			}
		})
	}
}

func TestParse_MalformedLineNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("OK=1\nbroken line\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=app\n"), 0o600))

	e, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "app", e.Get("DB_NAME", "fallback"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestEnv_Get(t *testing.T) {
	e, err := Parse(strings.NewReader("LOADED=file\nEMPTY=\n"))
	require.NoError(t, err)

	t.Run("loaded value wins", func(t *testing.T) {
		t.Setenv("LOADED", "ambient")
		assert.Equal(t, "file", e.Get("LOADED", "def"))
	})

	t.Run("loaded empty string counts as set", func(t *testing.T) {
		// 空字符串是真实值，不会落到默认值
		assert.Equal(t, "", e.Get("EMPTY", "def"))
		assert.True(t, e.Has("EMPTY"))
	})

	t.Run("falls back to process environment", func(t *testing.T) {
		t.Setenv("AMBIENT_ONLY", "os")
		assert.Equal(t, "os", e.Get("AMBIENT_ONLY", "def"))
		assert.True(t, e.Has("AMBIENT_ONLY"))
	})

	t.Run("falls back to default", func(t *testing.T) {
		assert.Equal(t, "def", e.Get("MISSING", "def"))
		assert.False(t, e.Has("MISSING"))
	})
}

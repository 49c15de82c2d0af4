package security

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPathValidator(t *testing.T) {
	tests := []struct {
		name      string
		dir       string
		wantError bool
	}{
		{name: "valid directory", dir: t.TempDir()},
		{name: "empty directory", dir: "", wantError: true},
		{name: "non-existent directory", dir: "/non/existent/path"},
		{name: "relative directory", dir: "testdata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator, err := NewPathValidator(tt.dir)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(validator.GetConfiguredDirectory()))
		})
	}
}

func TestPathValidator_ResolvePath(t *testing.T) {
	root := t.TempDir()
	subDir := filepath.Join(root, "kirish")
	require.NoError(t, os.Mkdir(subDir, 0o755))
	letter := filepath.Join(subDir, "xat.txt")
	require.NoError(t, os.WriteFile(letter, []byte("Hurmatli hamkasblar"), 0o644))

	validator, err := NewPathValidator(root)
	require.NoError(t, err)

	tests := []struct {
		name    string
		path    string
		want    string
		outside bool
		wantErr bool
	}{
		{name: "absolute file inside", path: letter, want: letter},
		{name: "relative file inside", path: "kirish/xat.txt", want: letter},
		{name: "configured directory itself", path: root, want: root},
		{name: "not yet existing file", path: "yangi.txt", want: filepath.Join(root, "yangi.txt")},
		{name: "dot segments inside", path: "kirish/../kirish/xat.txt", want: letter},
		{name: "parent traversal", path: "../outside.txt", outside: true, wantErr: true},
		{name: "absolute outside", path: "/etc/passwd", outside: true, wantErr: true},
		{name: "sibling with shared prefix", path: root + "-other/file.txt", outside: true, wantErr: true},
		{name: "empty path", path: "", wantErr: true},
		{name: "null byte", path: "xat\x00.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.ResolvePath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.outside, errors.Is(err, ErrOutsideDirectory))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathValidator_SymlinkEscape(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	secret := filepath.Join(outside, "maxfiy.txt")
	require.NoError(t, os.WriteFile(secret, []byte("parol"), 0o644))

	link := filepath.Join(root, "havola.txt")
	if err := os.Symlink(secret, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	validator, err := NewPathValidator(root)
	require.NoError(t, err)

	_, err = validator.ResolvePath(link)
	assert.ErrorIs(t, err, ErrOutsideDirectory)
}

func TestPathValidator_ValidateDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "xat.txt")
	require.NoError(t, os.WriteFile(file, []byte("xat"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "arxiv"), 0o755))

	validator, err := NewPathValidator(root)
	require.NoError(t, err)

	assert.NoError(t, validator.ValidateDirectory(root))
	assert.NoError(t, validator.ValidateDirectory("arxiv"))
	assert.NoError(t, validator.ValidateDirectory("hali-yoq"))
	assert.Error(t, validator.ValidateDirectory(file))
	assert.ErrorIs(t, validator.ValidateDirectory(filepath.Dir(root)), ErrOutsideDirectory)
}

package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindInputFiles(t *testing.T) {
	tmpDir := t.TempDir()

	file1 := filepath.Join(tmpDir, "file1.txt")
	file2 := filepath.Join(tmpDir, "file2.txt")
	subdir := filepath.Join(tmpDir, "subdir")
	file3 := filepath.Join(subdir, "file3.txt")
	file4 := filepath.Join(subdir, "file4.log")

	if err := os.WriteFile(file1, []byte("content1"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file2, []byte("content2"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(subdir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file3, []byte("content3"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file4, []byte("content4"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "single file pattern",
			patterns: []string{file1},
			want:     []string{file1},
		},
		{
			name:     "wildcard pattern matching multiple files",
			patterns: []string{filepath.Join(tmpDir, "*.txt")},
			want:     []string{file1, file2},
		},
		{
			name:     "recursive pattern",
			patterns: []string{filepath.Join(tmpDir, "**/*.txt")},
			want:     []string{file1, file2, file3},
		},
		{
			name:     "multiple patterns",
			patterns: []string{filepath.Join(tmpDir, "*.txt"), filepath.Join(subdir, "*.log")},
			want:     []string{file1, file2, file4},
		},
		{
			name:     "no patterns",
			patterns: nil,
			want:     []string{},
		},
		{
			name:     "pattern with no matches",
			patterns: []string{filepath.Join(tmpDir, "*.nonexistent")},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindInputFiles(tt.patterns...)
			if err != nil {
				t.Fatalf("FindInputFiles() error = %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("FindInputFiles() got %d files %v, want %d files %v",
					len(got), got, len(tt.want), tt.want)
			}

			gotSet := make(map[string]bool)
			for _, f := range got {
				gotSet[f] = true
			}
			for _, f := range tt.want {
				if !gotSet[f] {
					t.Errorf("FindInputFiles() missing expected file: %v", f)
				}
			}
		})
	}
}

func TestFindInputFiles_ExcludesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	dir := filepath.Join(tmpDir, "dir.txt")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindInputFiles(filepath.Join(tmpDir, "*.txt"))
	if err != nil {
		t.Fatalf("FindInputFiles() error = %v", err)
	}

	if len(got) != 1 || got[0] != file {
		t.Errorf("FindInputFiles() got %v, want only %v", got, file)
	}
}

func TestFindInputFiles_ExcludesSymlinks(t *testing.T) {
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
	symlink := filepath.Join(tmpDir, "link.txt")
	if err := os.Symlink(file, symlink); err != nil {
		t.Fatal(err)
	}

	got, err := FindInputFiles(filepath.Join(tmpDir, "*.txt"))
	if err != nil {
		t.Fatalf("FindInputFiles() error = %v", err)
	}

	if len(got) != 1 || got[0] != file {
		t.Errorf("FindInputFiles() got %v, want only %v", got, file)
	}
}

func TestFindInputFiles_InvalidPattern(t *testing.T) {
	_, err := FindInputFiles("[invalid")
	if err == nil {
		t.Error("FindInputFiles() expected error for invalid pattern, got nil")
	}
}

func TestFileSize(t *testing.T) {
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(file, []byte("12345"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := FileSize(file); got != 5 {
		t.Errorf("FileSize() = %d, want 5", got)
	}
}

func TestFileSize_MissingFile(t *testing.T) {
	if got := FileSize(filepath.Join(t.TempDir(), "missing.txt")); got != 0 {
		t.Errorf("FileSize() = %d, want 0 for missing file", got)
	}
}

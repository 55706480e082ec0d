package archive

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func readMembers(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Failed to open archive %s: %v", path, err)
	}
	defer r.Close()

	members := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open member %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("Failed to read member %s: %v", f.Name, err)
		}
		members[f.Name] = string(data)
	}
	return members
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "alpha content")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "beta content")
	writeFile(t, filepath.Join(dir, "sub", "deep", "c.bin"), "\x00\x01\x02\xff")

	res, err := Write(context.Background(), dir, ".mdf", "dataset.zip")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if res.FilesAdded != 3 {
		t.Errorf("FilesAdded = %d, want 3", res.FilesAdded)
	}
	if res.CompressedSize <= 0 {
		t.Errorf("CompressedSize = %d, want > 0", res.CompressedSize)
	}

	wantPath := filepath.Join(dir, ".mdf", "dataset.zip")
	if res.ArchivePath != wantPath {
		t.Errorf("ArchivePath = %s, want %s", res.ArchivePath, wantPath)
	}

	members := readMembers(t, wantPath)
	want := map[string]string{
		"a.txt":          "alpha content",
		"sub/b.txt":      "beta content",
		"sub/deep/c.bin": "\x00\x01\x02\xff",
	}
	if len(members) != len(want) {
		t.Fatalf("archive has %d members, want %d: %v", len(members), len(want), members)
	}
	for name, content := range want {
		if members[name] != content {
			t.Errorf("member %s = %q, want %q", name, members[name], content)
		}
	}
}

func TestWrite_ExcludesArchiveFolder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "data.txt"), "data")

	// First archive, then a second write: the existing archive must not end
	// up inside the new one.
	if _, err := Write(context.Background(), dir, ".mdf", "dataset.zip"); err != nil {
		t.Fatalf("first Write() error = %v", err)
	}
	res, err := Write(context.Background(), dir, ".mdf", "dataset.zip")
	if err != nil {
		t.Fatalf("second Write() error = %v", err)
	}
	if res.FilesAdded != 1 {
		t.Errorf("FilesAdded = %d, want 1 (archive folder excluded)", res.FilesAdded)
	}

	members := readMembers(t, res.ArchivePath)
	if _, ok := members[".mdf/dataset.zip"]; ok {
		t.Error("archive contains its own output folder")
	}
}

func TestWrite_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x.txt"), "x")

	if _, err := Write(context.Background(), dir, ".mdf", "dataset.zip"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, ".mdf", "dataset.zip"+TempSuffix)); !os.IsNotExist(err) {
		t.Errorf("temporary file still present after successful write")
	}
}

func TestWrite_CancelledContextLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x.txt"), "some content")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Write(ctx, dir, ".mdf", "dataset.zip")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Write() error = %v, want context.Canceled", err)
	}

	outDir := filepath.Join(dir, ".mdf")
	if _, err := os.Stat(filepath.Join(outDir, "dataset.zip")); !os.IsNotExist(err) {
		t.Error("final archive exists after cancelled write")
	}
	if _, err := os.Stat(filepath.Join(outDir, "dataset.zip"+TempSuffix)); !os.IsNotExist(err) {
		t.Error("temporary file left behind after cancelled write")
	}
}

func TestWrite_CancellationKeepsExistingArchive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x.txt"), "original content")

	first, err := Write(context.Background(), dir, ".mdf", "dataset.zip")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	before := readMembers(t, first.ArchivePath)

	writeFile(t, filepath.Join(dir, "y.txt"), "new content")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Write(ctx, dir, ".mdf", "dataset.zip"); err == nil {
		t.Fatal("Write() with cancelled context should fail")
	}

	// The prior archive is untouched and still valid.
	after := readMembers(t, first.ArchivePath)
	if len(after) != len(before) || after["x.txt"] != before["x.txt"] {
		t.Errorf("existing archive changed by failed write: before %v, after %v", before, after)
	}
	if _, err := Validate(first.ArchivePath); err != nil {
		t.Errorf("existing archive no longer validates: %v", err)
	}
}

func TestWrite_ReplacesExistingArchive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x.txt"), "v1")

	if _, err := Write(context.Background(), dir, ".mdf", "dataset.zip"); err != nil {
		t.Fatalf("first Write() error = %v", err)
	}

	writeFile(t, filepath.Join(dir, "x.txt"), "v2 content")
	res, err := Write(context.Background(), dir, ".mdf", "dataset.zip")
	if err != nil {
		t.Fatalf("second Write() error = %v", err)
	}

	members := readMembers(t, res.ArchivePath)
	if members["x.txt"] != "v2 content" {
		t.Errorf("member x.txt = %q, want updated content", members["x.txt"])
	}
}

func TestWrite_ArchiveFolderCreationFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x.txt"), "x")
	// A regular file where the archive folder should go.
	writeFile(t, filepath.Join(dir, ".mdf-blocked"), "in the way")

	if _, err := Write(context.Background(), dir, ".mdf-blocked", "dataset.zip"); err == nil {
		t.Fatal("Write() expected error when archive folder path is a file")
	}
}

func TestWrite_MissingCandidate(t *testing.T) {
	_, err := Write(context.Background(), filepath.Join(t.TempDir(), "gone"), ".mdf", "dataset.zip")
	if err == nil {
		t.Fatal("Write() expected error for missing candidate directory")
	}
}

func TestWrite_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	res, err := Write(context.Background(), dir, ".mdf", "dataset.zip")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if res.FilesAdded != 0 {
		t.Errorf("FilesAdded = %d, want 0", res.FilesAdded)
	}
	if _, err := Validate(res.ArchivePath); err != nil {
		t.Errorf("empty archive does not validate: %v", err)
	}
}

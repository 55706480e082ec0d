package archive

import (
	"archive/zip"
	"compress/flate"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mdf-science/mdfzip/internal/logging"
	"github.com/mdf-science/mdfzip/internal/scan"
)

// TempSuffix is appended to the final archive name while it is being staged.
// A crash leaves at most a file with this suffix, never a partial final
// archive.
const TempSuffix = ".tmp"

// Result describes a successfully finalized archive.
type Result struct {
	ArchivePath    string
	CompressedSize int64
	FilesAdded     int
}

// Write compresses every regular file under candidate (excluding the
// archive-output folder and symlinks) into
// <candidate>/<archiveFolder>/<archiveName>, preserving candidate-relative
// paths. The archive is staged in a temporary file, validated, and renamed
// into place as a single filesystem operation. On any failure the temporary
// file is removed and the final path is left exactly as it was, whether
// absent or holding a prior valid archive.
//
// Cancellation via ctx is honored between files; an interrupted write aborts
// before the rename and cleans up its temporary file.
func Write(ctx context.Context, candidate, archiveFolder, archiveName string) (Result, error) {
	files, _, err := scan.ListFiles(candidate, archiveFolder)
	if err != nil {
		return Result{}, err
	}

	outDir := filepath.Join(candidate, archiveFolder)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating archive folder: %w", err)
	}

	finalPath := filepath.Join(outDir, archiveName)
	tempPath := finalPath + TempSuffix

	added, err := writeTemp(ctx, tempPath, candidate, files)
	if err != nil {
		os.Remove(tempPath)
		return Result{}, err
	}

	members, err := Validate(tempPath)
	if err != nil {
		os.Remove(tempPath)
		return Result{}, err
	}
	if members != added {
		os.Remove(tempPath)
		return Result{}, fmt.Errorf("%w: %d members, %d written", ErrMemberCountMismatch, members, added)
	}

	// The rename is the only point where the final path changes. If a valid
	// archive already existed there it stays valid until this instant.
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return Result{}, fmt.Errorf("finalizing archive: %w", err)
	}

	info, err := os.Stat(finalPath)
	if err != nil {
		return Result{}, fmt.Errorf("stat finalized archive: %w", err)
	}

	return Result{
		ArchivePath:    finalPath,
		CompressedSize: info.Size(),
		FilesAdded:     added,
	}, nil
}

// writeTemp streams the candidate's files into the staged archive and
// returns how many were added. Files that cannot be opened are logged and
// skipped, mirroring the probe's inaccessible-file tolerance.
func writeTemp(ctx context.Context, tempPath, candidate string, files []scan.FileEntry) (int, error) {
	f, err := os.Create(tempPath)
	if err != nil {
		return 0, fmt.Errorf("creating temporary archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	// Balanced speed/ratio for large datasets.
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	added := 0
	for _, fe := range files {
		if err := ctx.Err(); err != nil {
			zw.Close()
			return added, err
		}
		if err := addFile(zw, fe); err != nil {
			if os.IsNotExist(err) || os.IsPermission(err) {
				logging.S().Warnw("cannot add file to archive", "path", fe.Path, "error", err)
				continue
			}
			zw.Close()
			return added, err
		}
		added++
	}

	if err := zw.Close(); err != nil {
		return added, fmt.Errorf("closing archive: %w", err)
	}
	if err := f.Sync(); err != nil {
		return added, fmt.Errorf("syncing archive: %w", err)
	}
	return added, nil
}

// addFile streams one source file into the archive. The source is opened
// read-only and content is copied without buffering the whole file.
func addFile(zw *zip.Writer, fe scan.FileEntry) error {
	src, err := os.Open(fe.Path)
	if err != nil {
		return err
	}
	defer src.Close()

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   filepath.ToSlash(fe.Rel),
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("creating archive member %s: %w", fe.Rel, err)
	}

	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("writing archive member %s: %w", fe.Rel, err)
	}
	return nil
}

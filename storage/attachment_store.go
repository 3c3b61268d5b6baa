package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateBucketLayout = "20060102"

// Store lays attachment files out in date buckets under two roots: staged
// uploads under tempRoot, confirmed attachments under storeRoot. All paths
// exchanged with callers are relative ("20250131/20250131_uuid.pdf").
type Store struct {
	tempRoot  string
	storeRoot string
}

// NewStore creates a store rooted at the given temp and permanent directories.
func NewStore(tempRoot, storeRoot string) *Store {
	return &Store{tempRoot: tempRoot, storeRoot: storeRoot}
}

// Stage writes an uploaded file into today's temp bucket under a collision-free
// name and returns the relative path.
func (s *Store) Stage(originalName string, src io.Reader) (string, error) {
	bucket := time.Now().UTC().Format(dateBucketLayout)
	name := fmt.Sprintf("%s_%s%s", bucket, uuid.NewString(), filepath.Ext(originalName))
	relPath := bucket + "/" + name

	dir := filepath.Join(s.tempRoot, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}
	return relPath, nil
}

// Promote moves a staged file into permanent storage. A missing staged file
// is skipped without error so that confirming the same upload twice stays
// harmless.
func (s *Store) Promote(relPath string) error {
	bucket, name, err := splitRelPath(relPath)
	if err != nil {
		return err
	}

	src := filepath.Join(s.tempRoot, bucket, name)
	if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	dstDir := filepath.Join(s.storeRoot, bucket)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	return os.Rename(src, filepath.Join(dstDir, name))
}

// Remove deletes a file from permanent storage.
func (s *Store) Remove(relPath string) error {
	bucket, name, err := splitRelPath(relPath)
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.storeRoot, bucket, name))
}

// Resolve maps a relative path to the absolute location of the stored file.
func (s *Store) Resolve(relPath string) (string, error) {
	bucket, name, err := splitRelPath(relPath)
	if err != nil {
		return "", err
	}
	abs := filepath.Join(s.storeRoot, bucket, name)
	if _, err := os.Stat(abs); err != nil {
		return "", err
	}
	return abs, nil
}

// PurgeStale deletes temp buckets whose date is older than maxAge. Buckets
// whose names do not parse as dates are left alone.
func (s *Store) PurgeStale(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.tempRoot)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-maxAge)
	purged := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		bucketDate, err := time.Parse(dateBucketLayout, entry.Name())
		if err != nil {
			continue
		}
		if bucketDate.After(cutoff) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(s.tempRoot, entry.Name())); err != nil {
			return purged, err
		}
		purged++
	}
	return purged, nil
}

func splitRelPath(relPath string) (bucket, name string, err error) {
	segments := strings.Split(relPath, "/")
	if len(segments) != 2 {
		return "", "", fmt.Errorf("invalid attachment path: %q", relPath)
	}
	for _, seg := range segments {
		if seg == "" || seg == "." || seg == ".." || strings.ContainsAny(seg, `\`) {
			return "", "", fmt.Errorf("invalid attachment path: %q", relPath)
		}
	}
	return segments[0], segments[1], nil
}

// ContentType maps a file name to the MIME type served on retrieval.
func ContentType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".xls":
		return "application/vnd.ms-excel"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// InlineDisposition reports whether a content type renders in the browser
// rather than downloading.
func InlineDisposition(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || contentType == "application/pdf"
}

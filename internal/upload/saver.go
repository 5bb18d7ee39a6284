package upload

import (
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxBytes caps photo uploads at 5 MiB unless configured otherwise.
const DefaultMaxBytes = 5 << 20

// allowedExts are the photo types the plot log accepts.
var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Saver validates and stores uploaded plot photos. The rest of the system
// only ever sees the opaque stored name it hands back; original filenames
// never reach disk.
type Saver struct {
	Dir      string
	MaxBytes int64
}

func NewSaver(dir string, maxBytes int64) *Saver {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Saver{Dir: dir, MaxBytes: maxBytes}
}

// Save stores the upload under a fresh uuid-based name and returns that
// name. A missing file, a disallowed extension, an oversize upload or any
// I/O trouble yields ("", false); the caller reports "not saved" and the
// request still succeeds.
func (s *Saver) Save(fh *multipart.FileHeader) (string, bool) {
	if fh == nil {
		return "", false
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return "", false
	}
	if fh.Size <= 0 || fh.Size > s.MaxBytes {
		return "", false
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		log.Printf("[upload] ensure dir %s: %v", s.Dir, err)
		return "", false
	}

	src, err := fh.Open()
	if err != nil {
		log.Printf("[upload] open upload: %v", err)
		return "", false
	}
	defer src.Close()

	name := uuid.NewString() + ext
	path := filepath.Join(s.Dir, name)
	dst, err := os.Create(path)
	if err != nil {
		log.Printf("[upload] create %s: %v", path, err)
		return "", false
	}
	defer dst.Close()

	// LimitReader guards against a header size that lies.
	if _, err := io.Copy(dst, io.LimitReader(src, s.MaxBytes)); err != nil {
		log.Printf("[upload] store %s: %v", path, err)
		_ = os.Remove(path)
		return "", false
	}
	return name, true
}

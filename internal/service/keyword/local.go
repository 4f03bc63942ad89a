package keyword

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Jeetch8/softfix-helper/internal/adapter/spreadsheet"
	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

// LocalFile describes a spreadsheet found on the server's disk.
type LocalFile struct {
	FileName   string
	Path       string
	SizeBytes  int64
	ModifiedAt time.Time
}

// LocalListing is the set of importable spreadsheets in one directory.
type LocalListing struct {
	Directory string
	Files     []LocalFile
}

// ListLocalFiles lists the spreadsheets in dir, which must lie under the import root.
func (s *Service) ListLocalFiles(ctx context.Context, dir string) (LocalListing, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return LocalListing{}, domain.ErrUnauthorized
	}

	abs, err := s.resolve("directoryPath", dir)
	if err != nil {
		return LocalListing{}, err
	}
	files, err := s.scan(abs)
	if err != nil {
		return LocalListing{}, err
	}
	return LocalListing{Directory: abs, Files: files}, nil
}

// ImportDirectory imports every spreadsheet in dir.
func (s *Service) ImportDirectory(ctx context.Context, dir string) (ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ImportResult{}, domain.ErrUnauthorized
	}

	abs, err := s.resolve("directoryPath", dir)
	if err != nil {
		return ImportResult{}, err
	}
	files, err := s.scan(abs)
	if err != nil {
		return ImportResult{}, err
	}
	if len(files) == 0 {
		return ImportResult{}, domain.NewValidationError("directoryPath", "no spreadsheet files found")
	}

	var res ImportResult
	for _, lf := range files {
		fr, err := s.importPath(ctx, userID, lf.Path)
		if err != nil {
			return res, err
		}
		res.add(fr)
	}

	s.log.InfoContext(ctx, "directory imported",
		slog.String("user_id", userID),
		slog.String("directory", abs),
		slog.Int("files", res.FilesProcessed),
		slog.Int("stored", res.StoredKeywords),
		slog.Int("updated", res.UpdatedKeywords),
	)
	return res, nil
}

// ImportFile imports a single spreadsheet under the import root.
func (s *Service) ImportFile(ctx context.Context, path string) (FileResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return FileResult{}, domain.ErrUnauthorized
	}

	abs, err := s.resolve("filePath", path)
	if err != nil {
		return FileResult{}, err
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return FileResult{}, domain.NewValidationError("filePath", "file does not exist")
	}

	return s.importPath(ctx, userID, abs)
}

func (s *Service) importPath(ctx context.Context, userID, path string) (FileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileResult{FileName: filepath.Base(path), Skipped: true, SkipReason: err.Error()}, nil
	}
	defer f.Close()

	return s.importOne(ctx, userID, File{Name: filepath.Base(path), Data: f})
}

// resolve turns p into an absolute path and rejects anything outside the import root.
// Relative paths are taken relative to the root.
func (s *Service) resolve(field, p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", domain.NewValidationError(field, "required")
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(s.importRoot, p)
	}
	p = filepath.Clean(p)

	rel, err := filepath.Rel(s.importRoot, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", domain.NewValidationError(field, "must be inside the keyword import directory")
	}
	return p, nil
}

// scan lists supported spreadsheets in dir, sorted by name. Office lock files are ignored.
func (s *Service) scan(dir string) ([]LocalFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewValidationError("directoryPath", "directory does not exist")
		}
		return nil, fmt.Errorf("read directory: %w", err)
	}

	files := []LocalFile{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, "~$") || !spreadsheet.Supported(name) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, LocalFile{
			FileName:   name,
			Path:       filepath.Join(dir, name),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime().UTC(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].FileName < files[j].FileName })
	return files, nil
}

package keyword

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/Jeetch8/softfix-helper/internal/adapter/spreadsheet"
	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

// Accepted header names per keyword field, in priority order.
var (
	keywordColumns       = []string{"Keyword", "keyword"}
	competitionColumns   = []string{"Competition", "competition"}
	overallColumns       = []string{"Overall", "overall"}
	searchVolumeColumns  = []string{"Search volume", "searchVolume", "search_volume"}
	thirtyDayAgoColumns  = []string{"30d ago searches", "thirtyDayAgoSearches"}
	timestampColumns     = []string{"Timestamp", "timestamp"}
	numberOfWordsColumns = []string{"Number of words", "numberOfWords", "number_of_words"}
)

// File is one spreadsheet to import.
type File struct {
	Name string
	Data io.Reader
}

// RowError describes a spreadsheet row that could not be stored.
type RowError struct {
	Row     int
	Keyword string
	Message string
}

// FileResult is the import outcome of one file.
type FileResult struct {
	FileName        string
	Skipped         bool
	SkipReason      string
	TotalKeywords   int
	StoredKeywords  int
	UpdatedKeywords int
	SkippedKeywords int
	Errors          []RowError
}

// ImportResult aggregates the outcome of a multi-file import.
type ImportResult struct {
	FilesProcessed  int
	FilesSkipped    int
	TotalKeywords   int
	StoredKeywords  int
	UpdatedKeywords int
	SkippedKeywords int
	Files           []FileResult
}

func (r *ImportResult) add(f FileResult) {
	r.Files = append(r.Files, f)
	if f.Skipped {
		r.FilesSkipped++
		return
	}
	r.FilesProcessed++
	r.TotalKeywords += f.TotalKeywords
	r.StoredKeywords += f.StoredKeywords
	r.UpdatedKeywords += f.UpdatedKeywords
	r.SkippedKeywords += f.SkippedKeywords
}

// ImportFiles imports uploaded spreadsheets. Files named like "export (1).xlsx"
// are skipped as duplicate downloads. Rows with an empty keyword or an overall
// score of 50 or less are skipped; an existing (user, keyword) pair is updated
// in place.
func (s *Service) ImportFiles(ctx context.Context, files []File) (ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ImportResult{}, domain.ErrUnauthorized
	}
	if len(files) == 0 {
		return ImportResult{}, domain.NewValidationError("files", "no files uploaded")
	}

	var res ImportResult
	for _, f := range files {
		fr, err := s.importOne(ctx, userID, f)
		if err != nil {
			return res, err
		}
		res.add(fr)
	}

	s.log.InfoContext(ctx, "keywords imported",
		slog.String("user_id", userID),
		slog.Int("files", res.FilesProcessed),
		slog.Int("stored", res.StoredKeywords),
		slog.Int("updated", res.UpdatedKeywords),
		slog.Int("skipped", res.SkippedKeywords),
	)
	return res, nil
}

// importOne imports a single file. Only context cancellation is returned as
// an error; everything else is reported in the FileResult.
func (s *Service) importOne(ctx context.Context, userID string, f File) (FileResult, error) {
	fr := FileResult{FileName: f.Name}

	switch {
	case spreadsheet.IsDuplicateDownload(f.Name):
		fr.Skipped, fr.SkipReason = true, "duplicate download"
		return fr, nil
	case !spreadsheet.Supported(f.Name):
		fr.Skipped, fr.SkipReason = true, "unsupported file type"
		return fr, nil
	}

	rows, err := spreadsheet.Read(f.Name, f.Data)
	if err != nil {
		s.log.WarnContext(ctx, "unreadable spreadsheet",
			slog.String("file", f.Name),
			slog.String("error", err.Error()),
		)
		fr.Skipped, fr.SkipReason = true, err.Error()
		return fr, nil
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return fr, err
		}
		fr.TotalKeywords++

		k := mapRow(row, userID)
		if k.Keyword == "" || k.Overall <= domain.MinOverall {
			fr.SkippedKeywords++
			continue
		}

		_, inserted, err := s.keywords.Upsert(ctx, k)
		if err != nil {
			fr.SkippedKeywords++
			// Header is row 1.
			fr.Errors = append(fr.Errors, RowError{Row: i + 2, Keyword: k.Keyword, Message: err.Error()})
			continue
		}
		if inserted {
			fr.StoredKeywords++
		} else {
			fr.UpdatedKeywords++
		}
	}

	return fr, nil
}

// mapRow maps one spreadsheet row onto a keyword using the first non-empty
// accepted column for each field. Unparseable numbers become zero.
func mapRow(row spreadsheet.Row, userID string) *domain.Keyword {
	k := &domain.Keyword{
		UserID:  userID,
		Keyword: strings.TrimSpace(row.First(keywordColumns...)),
		Metrics: domain.Metrics{
			Competition:          parseFloat(row.First(competitionColumns...)),
			Overall:              parseFloat(row.First(overallColumns...)),
			SearchVolume:         parseInt(row.First(searchVolumeColumns...)),
			ThirtyDayAgoSearches: parseInt(row.First(thirtyDayAgoColumns...)),
			NumberOfWords:        int(parseInt(row.First(numberOfWordsColumns...))),
		},
	}
	if k.NumberOfWords <= 0 {
		k.NumberOfWords = 1
	}
	if ts := parseInt(row.First(timestampColumns...)); ts != 0 {
		k.Timestamp = &ts
	}
	return k
}

func parseFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseInt(s string) int64 {
	v := parseFloat(s)
	if v > math.MaxInt64 || v < math.MinInt64 {
		return 0
	}
	return int64(v)
}

func (f FileResult) String() string {
	if f.Skipped {
		return fmt.Sprintf("%s: skipped (%s)", f.FileName, f.SkipReason)
	}
	return fmt.Sprintf("%s: %d rows, %d stored, %d updated, %d skipped",
		f.FileName, f.TotalKeywords, f.StoredKeywords, f.UpdatedKeywords, f.SkippedKeywords)
}

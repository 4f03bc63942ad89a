package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/internal/service/keyword"
)

type keywordService interface {
	ListKeywords(ctx context.Context, input keyword.ListKeywordsInput) ([]*domain.Keyword, domain.Pagination, error)
	Stats(ctx context.Context) (domain.KeywordStats, error)
	GetKeyword(ctx context.Context, id uuid.UUID) (*domain.Keyword, error)
	UpdateKeyword(ctx context.Context, input keyword.UpdateKeywordInput) (*domain.Keyword, error)
	DeleteKeyword(ctx context.Context, id uuid.UUID) error
	ImportFiles(ctx context.Context, files []keyword.File) (keyword.ImportResult, error)
	ListLocalFiles(ctx context.Context, dir string) (keyword.LocalListing, error)
	ImportDirectory(ctx context.Context, dir string) (keyword.ImportResult, error)
	ImportFile(ctx context.Context, path string) (keyword.FileResult, error)
	AddToTitle(ctx context.Context, id uuid.UUID) (*domain.Topic, *domain.Keyword, error)
	RemoveFromTitle(ctx context.Context, id uuid.UUID) (*domain.Keyword, error)
	AddToIdeas(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	RemoveFromIdeas(ctx context.Context, ideaID uuid.UUID) (*domain.Keyword, error)
}

// UploadLimits bounds multipart keyword uploads.
type UploadLimits struct {
	MaxFiles int
	MaxBytes int64
}

// KeywordHandler serves the keyword store, import and conversion endpoints.
type KeywordHandler struct {
	svc    keywordService
	limits UploadLimits
	log    *slog.Logger
}

// NewKeywordHandler creates a KeywordHandler.
func NewKeywordHandler(svc keywordService, limits UploadLimits, logger *slog.Logger) *KeywordHandler {
	if limits.MaxFiles <= 0 {
		limits.MaxFiles = 20
	}
	if limits.MaxBytes <= 0 {
		limits.MaxBytes = 50 << 20
	}
	return &KeywordHandler{svc: svc, limits: limits, log: logger.With("handler", "keyword")}
}

type updateKeywordRequest struct {
	Keyword              *string  `json:"keyword"`
	Competition          *float64 `json:"competition"`
	Overall              *float64 `json:"overall"`
	SearchVolume         *int64   `json:"searchVolume"`
	ThirtyDayAgoSearches *int64   `json:"thirtyDayAgoSearches"`
	NumberOfWords        *int     `json:"numberOfWords"`
	Timestamp            *int64   `json:"timestamp"`
}

type localDirectoryRequest struct {
	DirectoryPath string `json:"directoryPath"`
}

type localFileRequest struct {
	FilePath string `json:"filePath"`
}

type removeFromIdeasRequest struct {
	IdeaID string `json:"ideaId"`
}

// List handles GET /api/keywords.
func (h *KeywordHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseKeywordQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	items, page, err := h.svc.ListKeywords(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, toKeywordDTOs(items), page)
}

// Stats handles GET /api/keywords/stats.
func (h *KeywordHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Stats(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, keywordStatsDTO{
		TotalKeywords:       s.TotalKeywords,
		AvgOverall:          s.AvgOverall,
		AvgCompetition:      s.AvgCompetition,
		AvgSearchVolume:     s.AvgSearchVolume,
		HighScoreCount:      s.HighScoreCount,
		LowCompetitionCount: s.LowCompetitionCount,
	}, "")
}

// Get handles GET /api/keywords/{id}.
func (h *KeywordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	k, err := h.svc.GetKeyword(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toKeywordDTO(k), "")
}

// Update handles PUT /api/keywords/{id}.
func (h *KeywordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req updateKeywordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	k, err := h.svc.UpdateKeyword(r.Context(), keyword.UpdateKeywordInput{
		ID:                   id,
		Keyword:              req.Keyword,
		Competition:          req.Competition,
		Overall:              req.Overall,
		SearchVolume:         req.SearchVolume,
		ThirtyDayAgoSearches: req.ThirtyDayAgoSearches,
		NumberOfWords:        req.NumberOfWords,
		Timestamp:            req.Timestamp,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toKeywordDTO(k), "Keyword updated")
}

// Delete handles DELETE /api/keywords/{id}.
func (h *KeywordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteKeyword(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, nil, "Keyword deleted")
}

// Upload handles POST /api/keywords/upload with multipart field "files".
func (h *KeywordHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.limits.MaxBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, h.log, domain.NewValidationError("files", fmt.Sprintf("upload exceeds %d bytes", h.limits.MaxBytes)))
			return
		}
		writeError(w, r, h.log, domain.NewValidationError("files", "expected a multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, r, h.log, domain.NewValidationError("files", "no files uploaded"))
		return
	}
	if len(headers) > h.limits.MaxFiles {
		writeError(w, r, h.log, domain.NewValidationError("files", fmt.Sprintf("at most %d files per upload", h.limits.MaxFiles)))
		return
	}

	files, closeAll, err := openUploads(headers)
	defer closeAll()
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ImportFiles(r.Context(), files)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toImportResultDTO(res), importMessage(res))
}

// ListLocal handles GET /api/keywords/local/list?directoryPath=.
func (h *KeywordHandler) ListLocal(w http.ResponseWriter, r *http.Request) {
	dir := r.URL.Query().Get("directoryPath")
	if dir == "" {
		dir = "."
	}
	listing, err := h.svc.ListLocalFiles(r.Context(), dir)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toLocalListingDTO(listing), fmt.Sprintf("Found %d spreadsheet files", len(listing.Files)))
}

// ImportDirectory handles POST /api/keywords/local/import-directory.
func (h *KeywordHandler) ImportDirectory(w http.ResponseWriter, r *http.Request) {
	var req localDirectoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	res, err := h.svc.ImportDirectory(r.Context(), req.DirectoryPath)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toImportResultDTO(res), importMessage(res))
}

// ImportFile handles POST /api/keywords/local/import-file.
func (h *KeywordHandler) ImportFile(w http.ResponseWriter, r *http.Request) {
	var req localFileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	res, err := h.svc.ImportFile(r.Context(), req.FilePath)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toFileResultDTO(res), res.String())
}

// AddToTitle handles POST /api/keywords/{id}/add-to-title.
func (h *KeywordHandler) AddToTitle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	t, k, err := h.svc.AddToTitle(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, struct {
		Topic   topicDTO   `json:"topic"`
		Keyword keywordDTO `json:"keyword"`
	}{toTopicDTO(t), toKeywordDTO(k)}, "Keyword added to the title queue")
}

// RemoveFromTitle handles POST /api/keywords/{id}/remove-from-title.
func (h *KeywordHandler) RemoveFromTitle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	k, err := h.svc.RemoveFromTitle(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toKeywordDTO(k), "Keyword removed from the title queue")
}

// AddToIdeas handles POST /api/keywords/{id}/add-to-ideas.
func (h *KeywordHandler) AddToIdeas(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	i, err := h.svc.AddToIdeas(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toIdeaDTO(i), "Keyword moved to ideas")
}

// RemoveFromIdeas handles POST /api/keywords/{id}/remove-from-ideas. The idea
// to restore is named in the body; the path id is not used.
func (h *KeywordHandler) RemoveFromIdeas(w http.ResponseWriter, r *http.Request) {
	var req removeFromIdeasRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	ideaID, err := uuid.Parse(req.IdeaID)
	if err != nil {
		writeError(w, r, h.log, domain.NewValidationError("ideaId", "must be a valid UUID"))
		return
	}

	k, err := h.svc.RemoveFromIdeas(r.Context(), ideaID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toKeywordDTO(k), "Idea moved back to keywords")
}

func openUploads(headers []*multipart.FileHeader) ([]keyword.File, func(), error) {
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			c.Close() //nolint:errcheck
		}
	}

	files := make([]keyword.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		closers = append(closers, f)
		files = append(files, keyword.File{Name: fh.Filename, Data: f})
	}
	return files, closeAll, nil
}

func importMessage(r keyword.ImportResult) string {
	return fmt.Sprintf("Imported %d files: %d stored, %d updated, %d skipped",
		r.FilesProcessed, r.StoredKeywords, r.UpdatedKeywords, r.SkippedKeywords)
}

func parseKeywordQuery(q url.Values) (keyword.ListKeywordsInput, error) {
	p := queryParser{q: q}
	input := keyword.ListKeywordsInput{
		Search:          q.Get("search"),
		MinOverall:      p.floatParam("minOverall"),
		MaxOverall:      p.floatParam("maxOverall"),
		MinSearchVolume: p.int64Param("minSearchVolume"),
		MaxSearchVolume: p.int64Param("maxSearchVolume"),
		MinCompetition:  p.floatParam("minCompetition"),
		MaxCompetition:  p.floatParam("maxCompetition"),
		AddedToTitle:    p.boolParam("addedToTitle"),
		SortBy:          q.Get("sortBy"),
		SortOrder:       q.Get("sortOrder"),
		Page:            p.intParam("page"),
		Limit:           p.intParam("limit"),
	}
	return input, p.err()
}

// queryParser collects conversion errors for optional query parameters.
type queryParser struct {
	q    url.Values
	errs []domain.FieldError
}

func (p *queryParser) fail(name, msg string) {
	p.errs = append(p.errs, domain.FieldError{Field: name, Message: msg})
}

func (p *queryParser) floatParam(name string) *float64 {
	s := p.q.Get(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.fail(name, "must be a number")
		return nil
	}
	return &v
}

func (p *queryParser) int64Param(name string) *int64 {
	s := p.q.Get(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.fail(name, "must be an integer")
		return nil
	}
	return &v
}

func (p *queryParser) intParam(name string) int {
	v := p.int64Param(name)
	if v == nil {
		return 0
	}
	return int(*v)
}

func (p *queryParser) boolParam(name string) *bool {
	s := p.q.Get(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		p.fail(name, "must be true or false")
		return nil
	}
	return &v
}

func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}

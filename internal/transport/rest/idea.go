package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/internal/service/idea"
)

type ideaService interface {
	CreateIdea(ctx context.Context, input idea.CreateIdeaInput) (*domain.Idea, error)
	ListIdeas(ctx context.Context, input idea.ListIdeasInput) ([]*domain.Idea, domain.Pagination, error)
	Stats(ctx context.Context) (domain.IdeaStats, error)
	GetIdea(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	UpdateIdea(ctx context.Context, input idea.UpdateIdeaInput) (*domain.Idea, error)
	DeleteIdea(ctx context.Context, id uuid.UUID) error
	ConvertToTopic(ctx context.Context, input idea.ConvertInput) (*domain.Topic, *domain.Idea, error)
}

// IdeaHandler serves the idea store endpoints.
type IdeaHandler struct {
	svc ideaService
	log *slog.Logger
}

// NewIdeaHandler creates an IdeaHandler.
func NewIdeaHandler(svc ideaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{svc: svc, log: logger.With("handler", "idea")}
}

type createIdeaRequest struct {
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Competition          float64 `json:"competition"`
	Overall              float64 `json:"overall"`
	SearchVolume         int64   `json:"searchVolume"`
	ThirtyDayAgoSearches int64   `json:"thirtyDayAgoSearches"`
	NumberOfWords        int     `json:"numberOfWords"`
}

type updateIdeaRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type convertIdeaRequest struct {
	TopicName   *string `json:"topicName"`
	Description *string `json:"description"`
}

type ideaStatsDTO struct {
	TotalIdeas     int `json:"totalIdeas"`
	ConvertedCount int `json:"convertedCount"`
}

// List handles GET /api/ideas.
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := queryParser{q: q}
	input := idea.ListIdeasInput{
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Page:      p.intParam("page"),
		Limit:     p.intParam("limit"),
	}
	if err := p.err(); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	items, page, err := h.svc.ListIdeas(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, toIdeaDTOs(items), page)
}

// Create handles POST /api/ideas.
func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createIdeaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	i, err := h.svc.CreateIdea(r.Context(), idea.CreateIdeaInput{
		Title:       req.Title,
		Description: req.Description,
		Metrics: domain.Metrics{
			Competition:          req.Competition,
			Overall:              req.Overall,
			SearchVolume:         req.SearchVolume,
			ThirtyDayAgoSearches: req.ThirtyDayAgoSearches,
			NumberOfWords:        req.NumberOfWords,
		},
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusCreated, toIdeaDTO(i), "Idea created")
}

// Stats handles GET /api/ideas/stats.
func (h *IdeaHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Stats(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, ideaStatsDTO{TotalIdeas: s.TotalIdeas, ConvertedCount: s.ConvertedCount}, "")
}

// Get handles GET /api/ideas/{id}.
func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	i, err := h.svc.GetIdea(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toIdeaDTO(i), "")
}

// Update handles PUT /api/ideas/{id}.
func (h *IdeaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req updateIdeaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	i, err := h.svc.UpdateIdea(r.Context(), idea.UpdateIdeaInput{ID: id, Title: req.Title, Description: req.Description})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toIdeaDTO(i), "Idea updated")
}

// Delete handles DELETE /api/ideas/{id}.
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteIdea(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, nil, "Idea deleted")
}

// Convert handles POST /api/ideas/{id}/convert-to-topic.
func (h *IdeaHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req convertIdeaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	t, i, err := h.svc.ConvertToTopic(r.Context(), idea.ConvertInput{ID: id, TopicName: req.TopicName, Description: req.Description})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusCreated, struct {
		Topic topicDTO `json:"topic"`
		Idea  ideaDTO  `json:"idea"`
	}{toTopicDTO(t), toIdeaDTO(i)}, "Idea converted to topic")
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/internal/service/poller"
	"github.com/Jeetch8/softfix-helper/internal/service/topic"
)

type topicService interface {
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListTopics(ctx context.Context) ([]*domain.Topic, error)
	Stats(ctx context.Context) (domain.TopicStats, error)
	DeleteTopic(ctx context.Context, topicID uuid.UUID) error
	RegenerateScript(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	UpdateScript(ctx context.Context, input topic.UpdateScriptInput) (*domain.Topic, error)
	GenerateTitles(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	SelectTitle(ctx context.Context, input topic.TitleInput) (*domain.Topic, error)
	UpdateTitle(ctx context.Context, input topic.TitleInput) (*domain.Topic, error)
	GenerateThumbnails(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	SelectThumbnail(ctx context.Context, input topic.SelectThumbnailInput) (*domain.Topic, error)
	GenerateExtraAssets(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	MarkAsEditing(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	MarkAsUploaded(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
}

type topicProcessor interface {
	ProcessNow(ctx context.Context) (poller.Result, error)
}

// TopicHandler serves the topic lifecycle endpoints.
type TopicHandler struct {
	svc       topicService
	processor topicProcessor
	log       *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, processor topicProcessor, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, processor: processor, log: logger.With("handler", "topic")}
}

type createTopicRequest struct {
	TopicName   string `json:"topicName"`
	Description string `json:"description"`
}

type updateScriptRequest struct {
	NarrationScript string `json:"narrationScript"`
}

type titleRequest struct {
	Title string `json:"title"`
}

type selectThumbnailRequest struct {
	ThumbnailURL string `json:"thumbnailUrl"`
}

// List handles GET /api/topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListTopics(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		envelope
		Count int `json:"count"`
	}{envelope{Success: true, Data: toTopicDTOs(topics)}, len(topics)})
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	t, err := h.svc.CreateTopic(r.Context(), topic.CreateTopicInput{
		TopicName:   req.TopicName,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusCreated, toTopicDTO(t), "Topic created, narration script will be generated shortly")
}

// Get handles GET /api/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, "", h.svc.GetTopic)
}

// Delete handles DELETE /api/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteTopic(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, nil, "Topic deleted")
}

// Stats handles GET /api/status/all.
func (h *TopicHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toTopicStatsDTO(stats), "")
}

// ProcessNow handles POST /api/process-now.
func (h *TopicHandler) ProcessNow(w http.ResponseWriter, r *http.Request) {
	res, err := h.processor.ProcessNow(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toProcessResultDTO(res), "Pending topics processed")
}

// Regenerate handles POST /api/topics/{id}/regenerate.
func (h *TopicHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, "Narration script regenerated", h.svc.RegenerateScript)
}

// UpdateScript handles PUT /api/topics/{id}/script.
func (h *TopicHandler) UpdateScript(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req updateScriptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	t, err := h.svc.UpdateScript(r.Context(), topic.UpdateScriptInput{TopicID: id, Script: req.NarrationScript})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toTopicDTO(t), "Narration script updated")
}

// GenerateTitles handles POST /api/topics/{id}/generate-titles.
func (h *TopicHandler) GenerateTitles(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, "Titles generated", h.svc.GenerateTitles)
}

// SelectTitle handles POST /api/topics/{id}/select-title.
func (h *TopicHandler) SelectTitle(w http.ResponseWriter, r *http.Request) {
	h.title(w, r, "Title selected", h.svc.SelectTitle)
}

// UpdateTitle handles PUT /api/topics/{id}/update-title.
func (h *TopicHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	h.title(w, r, "Title updated", h.svc.UpdateTitle)
}

// GenerateThumbnails handles POST /api/topics/{id}/generate-thumbnails.
func (h *TopicHandler) GenerateThumbnails(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, "Thumbnails generated", h.svc.GenerateThumbnails)
}

// SelectThumbnail handles POST /api/topics/{id}/select-thumbnail.
func (h *TopicHandler) SelectThumbnail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req selectThumbnailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	t, err := h.svc.SelectThumbnail(r.Context(), topic.SelectThumbnailInput{TopicID: id, ThumbnailURL: req.ThumbnailURL})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toTopicDTO(t), "Thumbnail selected")
}

// GenerateExtraAssets handles POST /api/topics/{id}/generate-extra-assets.
func (h *TopicHandler) GenerateExtraAssets(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, "SEO description, tags, timestamps and audio generated", h.svc.GenerateExtraAssets)
}

// MarkEditing handles POST /api/topics/{id}/mark-editing.
func (h *TopicHandler) MarkEditing(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, "Topic marked as editing", h.svc.MarkAsEditing)
}

// MarkUploaded handles POST /api/topics/{id}/mark-uploaded.
func (h *TopicHandler) MarkUploaded(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, "Topic marked as uploaded", h.svc.MarkAsUploaded)
}

func (h *TopicHandler) byID(w http.ResponseWriter, r *http.Request, message string, op func(context.Context, uuid.UUID) (*domain.Topic, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	t, err := op(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toTopicDTO(t), message)
}

func (h *TopicHandler) title(w http.ResponseWriter, r *http.Request, message string, op func(context.Context, topic.TitleInput) (*domain.Topic, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req titleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	t, err := op(r.Context(), topic.TitleInput{TopicID: id, Title: req.Title})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK, toTopicDTO(t), message)
}

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/catalog-feed-api/internal/feed"
	"github.com/catalog-feed-api/internal/models"
)

// FeedHandler handles feed read and mutation endpoints
type FeedHandler struct {
	feedSvc *feed.Service
	log     zerolog.Logger
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedSvc *feed.Service, log zerolog.Logger) *FeedHandler {
	return &FeedHandler{
		feedSvc: feedSvc,
		log:     log.With().Str("handler", "feed").Logger(),
	}
}

// submitRequest is the POST /v1/feed/items payload
type submitRequest struct {
	models.ManualSubmission
	Author models.Author `json:"author"`
}

// actorRequest carries the caller identity of a mutation
type actorRequest struct {
	ActorID   int64  `json:"actor_id"`
	ActorRole string `json:"actor_role"`
}

// updateRequest is the PATCH /v1/feed/items/:id payload
type updateRequest struct {
	actorRequest
	models.ItemUpdate
}

// GetFeed handles GET /v1/feed
func (h *FeedHandler) GetFeed(c *gin.Context) {
	document, err := h.feedSvc.Feed(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load feed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load feed"})
		return
	}
	c.JSON(http.StatusOK, document)
}

// SubmitItem handles POST /v1/feed/items
func (h *FeedHandler) SubmitItem(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Author.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "author.id is required"})
		return
	}

	item, reason, err := h.feedSvc.SubmitManual(c.Request.Context(), req.ManualSubmission, req.Author)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to submit item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit item"})
		return
	}
	if reason != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": reason})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PATCH /v1/feed/items/:id
func (h *FeedHandler) UpdateItem(c *gin.Context) {
	id := c.Param("id")

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	actor, ok := h.resolveActor(c, req.actorRequest)
	if !ok {
		return
	}

	item, reason, err := h.feedSvc.UpdateItem(c.Request.Context(), id, req.ItemUpdate, actor)
	if err != nil {
		h.log.Error().Err(err).Str("item_id", id).Msg("Failed to update item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		return
	}
	if reason != "" {
		c.JSON(statusForReason(reason), gin.H{"error": reason})
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /v1/feed/items/:id
func (h *FeedHandler) DeleteItem(c *gin.Context) {
	id := c.Param("id")

	req := actorRequest{
		ActorID:   parseInt64(c.Query("actor_id")),
		ActorRole: c.Query("actor_role"),
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	actor, ok := h.resolveActor(c, req)
	if !ok {
		return
	}

	reason, err := h.feedSvc.DeleteItem(c.Request.Context(), id, actor)
	if err != nil {
		h.log.Error().Err(err).Str("item_id", id).Msg("Failed to delete item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete item"})
		return
	}
	if reason != "" {
		c.JSON(statusForReason(reason), gin.H{"error": reason})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// resolveActor validates the caller identity of a mutation. Replies on
// the context and returns false when it is missing.
func (h *FeedHandler) resolveActor(c *gin.Context, req actorRequest) (models.Actor, bool) {
	if req.ActorID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "actor_id is required"})
		return models.Actor{}, false
	}
	return models.Actor{
		ID:   req.ActorID,
		Role: models.NormalizeRole(req.ActorRole),
	}, true
}

// statusForReason maps domain rejection reasons to HTTP statuses
func statusForReason(reason string) int {
	switch reason {
	case feed.ReasonItemNotFound:
		return http.StatusNotFound
	case feed.ReasonInsufficientPermissions, feed.ReasonNotOwnItem:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

func parseInt64(value string) int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

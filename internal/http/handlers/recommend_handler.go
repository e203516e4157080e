// README: Recommendation handler (SSE relay from the AI stream to the page).
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wander/internal/maps"
	"wander/internal/modules/quota"
	"wander/internal/modules/recommend"
)

// apologyMessage is the single user-visible failure text. All stream and
// transport errors collapse into it; the user never sees error subtypes.
const apologyMessage = "Sorry, something went wrong while looking for your destination. Please try again."

// placeResolveTimeout bounds the best-effort address lookup per place event.
const placeResolveTimeout = 3 * time.Second

type RecommendHandler struct {
	recommender *recommend.Service
	quota       *quota.Service
	places      *maps.PlacesService // nil when no maps API key is configured
	embedKey    string
	timeout     time.Duration
}

func NewRecommendHandler(recommender *recommend.Service, quotaSvc *quota.Service, places *maps.PlacesService, embedKey string, timeout time.Duration) *RecommendHandler {
	return &RecommendHandler{
		recommender: recommender,
		quota:       quotaSvc,
		places:      places,
		embedKey:    embedKey,
		timeout:     timeout,
	}
}

// Stream handles GET /api/recommend. It runs one dispatch and relays the
// sink effects as SSE events: zero or more "place", at most one "text" or
// one "error", then always "done".
func (h *RecommendHandler) Stream(c *gin.Context) {
	prompt := strings.TrimSpace(c.Query("prompt"))
	if prompt == "" {
		writeError(c, http.StatusBadRequest, "missing prompt")
		return
	}

	if err := h.quota.Use(c.Request.Context(), c.ClientIP()); err != nil {
		if errors.Is(err, quota.ErrQuotaExhausted) {
			writeError(c, http.StatusTooManyRequests, err.Error())
			return
		}
		// Quota backend trouble must not take recommendations down with it.
		log.Printf("quota check failed, allowing request: %v", err)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	sink := &sseSink{c: c, h: h, ctx: ctx}
	_, err := h.recommender.Dispatch(ctx, prompt, sink)
	if err != nil {
		log.Printf("dispatch failed: %v", err)
		c.SSEvent("error", gin.H{"message": apologyMessage})
	}
	c.SSEvent("done", gin.H{})
	c.Writer.Flush()
}

// Presets handles GET /api/presets.
func (h *RecommendHandler) Presets(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"presets": recommend.Presets})
}

// Quota handles GET /api/quota. A zero limit means the quota is disabled.
func (h *RecommendHandler) Quota(c *gin.Context) {
	limit := h.quota.Limit()
	remaining, err := h.quota.Remaining(c.Request.Context(), c.ClientIP())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"limit": limit, "remaining": remaining})
}

// sseSink implements recommend.Sink by writing SSE events to the response.
// Replace semantics are the page's job; the sink just relays every effect
// in order, flushing after each so the browser sees them as they happen.
type sseSink struct {
	c   *gin.Context
	h   *RecommendHandler
	ctx context.Context
}

func (s *sseSink) ShowPlace(location, caption string) {
	payload := gin.H{
		"location":  location,
		"caption":   caption,
		"embed_url": maps.EmbedURL(s.h.embedKey, location),
	}
	if s.h.places != nil {
		ctx, cancel := context.WithTimeout(s.ctx, placeResolveTimeout)
		resolved, err := s.h.places.Resolve(ctx, location)
		cancel()
		if err == nil {
			payload["address"] = resolved.Address
			payload["lat"] = resolved.Lat
			payload["lng"] = resolved.Lng
		}
	}
	s.c.SSEvent("place", payload)
	s.c.Writer.Flush()
}

func (s *sseSink) ShowText(body string) {
	s.c.SSEvent("text", gin.H{"body": body})
	s.c.Writer.Flush()
}

package apihandlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"verba/internal/app"
	"verba/internal/models"
	"verba/internal/services"
	"verba/pkg/metrics"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type APIHandler struct {
	App     *app.App
	Metrics *metrics.Metrics // optional
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// ListPostsResponse is the body of GET /posts/.
type ListPostsResponse struct {
	TotalCount int64                  `json:"total_count"`
	Posts      []models.ProcessedPost `json:"posts"`
}

// ListPostsHandler handles GET /posts/: optional category and repeatable
// keywords filters, offset/limit pagination, word frequency per post.
func (h *APIHandler) ListPostsHandler(c *gin.Context) {
	params, err := parseListPostsParams(c)
	if err != nil {
		BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	total, posts, err := h.App.PostService.ListProcessedPosts(c.Request.Context(), params)
	if err != nil {
		log.WithError(err).Error("ListPostsHandler: pipeline failed")
		Internal(c, "failed to list posts")
		return
	}

	if h.Metrics != nil {
		h.Metrics.PostsListedTotal.Add(float64(len(posts)))
	}
	c.JSON(http.StatusOK, ListPostsResponse{TotalCount: total, Posts: posts})
}

// parseListPostsParams parses and validates the query parameters. Offset
// must be >= 0 and limit within [1, 100]; violations are rejected here so
// the pipeline can assume valid ranges.
func parseListPostsParams(c *gin.Context) (services.ListPostsParams, error) {
	limit := defaultLimit
	offset := 0

	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 || parsed > maxLimit {
			return services.ListPostsParams{}, fmt.Errorf("invalid limit: %s (expected 1-%d)", l, maxLimit)
		}
		limit = parsed
	}
	if o := c.Query("offset"); o != "" {
		parsed, err := strconv.Atoi(o)
		if err != nil || parsed < 0 {
			return services.ListPostsParams{}, fmt.Errorf("invalid offset: %s (expected >= 0)", o)
		}
		offset = parsed
	}

	keywords := make([]string, 0)
	for _, kw := range c.QueryArray("keywords") {
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}

	return services.ListPostsParams{
		Category: c.Query("category"),
		Keywords: keywords,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// HealthHandler reports liveness and store connectivity.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	if err := h.App.PostStore.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RootHandler greets callers at /.
func (h *APIHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the verba posts API."})
}

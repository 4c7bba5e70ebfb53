// Package worker implements the asynq task handlers.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"verba/internal/fileingest"
	"verba/internal/models"
	"verba/internal/store"
	"verba/internal/tasks"
	"verba/internal/util"
	"verba/pkg/metrics"
)

// IngestDeps carries the dependencies for the post ingest handler.
// Metrics may be nil.
type IngestDeps struct {
	Store           store.PostStore
	DefaultCategory string
	Metrics         *metrics.Metrics
}

func (d IngestDeps) countIngest(status string) {
	if d.Metrics != nil {
		d.Metrics.PostsIngestedTotal.WithLabelValues(status).Inc()
	}
}

// RegisterHandlers attaches all task handlers to the mux.
func RegisterHandlers(mux *asynq.ServeMux, deps IngestDeps) {
	mux.HandleFunc(tasks.TypePostIngest, HandlePostIngest(deps))
}

// HandlePostIngest reads the file named in the payload, sanitizes it, and
// stores it as a post. HTML files are reduced to their visible text.
func HandlePostIngest(deps IngestDeps) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload tasks.PostIngestPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal %s payload: %w", tasks.TypePostIngest, err)
		}

		binary, err := util.IsLikelyBinary(payload.Path)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", payload.Path, err)
		}
		if binary {
			log.WithField("path", payload.Path).Warn("skipping binary file")
			deps.countIngest("skipped")
			return nil
		}

		raw, err := fileingest.ReadFileContent(payload.Path)
		if err != nil {
			return fmt.Errorf("read %s: %w", payload.Path, err)
		}
		content, err := util.CleanText(raw, payload.Path)
		if err != nil {
			return fmt.Errorf("clean %s: %w", payload.Path, err)
		}
		if strings.EqualFold(filepath.Ext(payload.Path), ".html") {
			content = fileingest.StripHTML(content)
		}

		category := payload.Category
		if category == "" {
			category = deps.DefaultCategory
		}

		post := &models.Post{Category: category, Content: content}
		if err := deps.Store.CreatePost(ctx, post); err != nil {
			deps.countIngest("failed")
			return fmt.Errorf("store post from %s: %w", payload.Path, err)
		}
		deps.countIngest("ingested")

		log.WithFields(log.Fields{
			"post_id":  post.ID,
			"category": post.Category,
			"path":     payload.Path,
		}).Info("ingested post")
		return nil
	}
}

package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TypePostIngest is the task type for ingesting a post file into the store.
const TypePostIngest = "post:ingest"

// PostIngestPayload is the JSON payload of a post:ingest task.
type PostIngestPayload struct {
	Path     string `json:"path"`
	Category string `json:"category"`
}

// NewPostIngestTask builds an asynq task that ingests the file at path as a
// post in the given category.
func NewPostIngestTask(path, category string) (*asynq.Task, error) {
	payload, err := json.Marshal(PostIngestPayload{Path: path, Category: category})
	if err != nil {
		return nil, fmt.Errorf("marshal post ingest payload: %w", err)
	}
	return asynq.NewTask(TypePostIngest, payload), nil
}

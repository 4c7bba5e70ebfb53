package store

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"verba/internal/tasks"
)

// JobClient enqueues background work for the worker process.
type JobClient interface {
	EnqueuePostIngest(ctx context.Context, path, category string) (string, error)
	Close() error
}

var _ JobClient = (*AsynqJobClient)(nil)

// AsynqJobClient is the Redis-backed JobClient.
type AsynqJobClient struct {
	client *asynq.Client
}

func NewAsynqJobClient(opt asynq.RedisClientOpt) *AsynqJobClient {
	return &AsynqJobClient{client: asynq.NewClient(opt)}
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

// EnqueuePostIngest enqueues a post:ingest task and returns the task ID.
func (jc *AsynqJobClient) EnqueuePostIngest(ctx context.Context, path, category string) (string, error) {
	task, err := tasks.NewPostIngestTask(path, category)
	if err != nil {
		return "", err
	}
	info, err := jc.client.EnqueueContext(ctx, task)
	if err != nil {
		return "", fmt.Errorf("enqueue %s for %s: %w", tasks.TypePostIngest, path, err)
	}
	log.WithFields(log.Fields{"task_id": info.ID, "queue": info.Queue, "path": path}).
		Debug("enqueued post ingest task")
	return info.ID, nil
}

package interfaces

import (
	"context"

	"app_oficios/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// Update replaces the stored job wholesale: lifecycle transitions rewrite the
// full record instead of patching fields, so a concurrent reader never sees a
// half-applied transition.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	ListByProfessional(ctx context.Context, professionalID string, status entities.JobStatus) ([]entities.Job, error)
	ListByRequester(ctx context.Context, requesterID string, status entities.JobStatus) ([]entities.Job, error)
	ListUnbilled(ctx context.Context) ([]entities.Job, error)
}

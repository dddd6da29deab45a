package interfaces

import (
	"context"

	"app_oficios/internal/domain/entities"
)

// IProfessionalRepository abstracts DynamoDB persistence for professional
// profiles, including the weekly agenda the scheduling resolver reads.

type IProfessionalRepository interface {
	GetByID(ctx context.Context, id string) (entities.Professional, error)
}

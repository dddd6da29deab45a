package interfaces

import (
	"context"

	"app_oficios/internal/domain/entities"
)

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// Lookups the workflow needs:
//   - FindPending resolves the ≤1-PENDIENTE-per-pair rule before submission
//   - ListReservationsBetween feeds the scheduling resolver with the taken
//     windows of a professional inside a date span (bounds inclusive)

type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	FindPending(ctx context.Context, requesterID, professionalID string) (entities.ServiceRequest, error)
	ListPendingByProfessional(ctx context.Context, professionalID string) ([]entities.ServiceRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]entities.ServiceRequest, error)
	ListReservationsBetween(ctx context.Context, professionalID, fromDate, toDate string) ([]entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error)
}

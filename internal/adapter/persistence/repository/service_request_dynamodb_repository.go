package repository

import (
	"context"
	"time"

	"app_oficios/internal/domain/entities"
	"app_oficios/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName  = "service_requests"
	requestsProfessionalIndex = "professional_id-index"
	requestsRequesterIndex    = "requester_id-index"
)

type serviceRequestItem struct {
	ID              string `dynamodbav:"id"`
	RequesterID     string `dynamodbav:"requester_id"`
	ProfessionalID  string `dynamodbav:"professional_id"`
	RequestedAt     string `dynamodbav:"requested_at"`
	ServiceDate     string `dynamodbav:"service_date"`
	ReservedTime    string `dynamodbav:"reserved_time,omitempty"`
	DurationMinutes int    `dynamodbav:"duration_minutes,omitempty"`
	Note            string `dynamodbav:"note"`
	Status          string `dynamodbav:"status"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: professional_id-index (PK: professional_id)
//   - GSI: requester_id-index (PK: requester_id)

type ServiceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	it := toServiceRequestItem(sr)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

// FindPending returns the single PENDIENTE request for the pair, or the zero
// value when none exists.
func (r *ServiceRequestDynamoRepository) FindPending(ctx context.Context, requesterID, professionalID string) (entities.ServiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsRequesterIndex),
		KeyConditionExpression: aws.String("requester_id = :rid"),
		FilterExpression:       aws.String("professional_id = :pid AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":     &types.AttributeValueMemberS{Value: requesterID},
			":pid":     &types.AttributeValueMemberS{Value: professionalID},
			":pending": &types.AttributeValueMemberS{Value: string(entities.RequestStatusPendiente)},
		},
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) ListPendingByProfessional(ctx context.Context, professionalID string) ([]entities.ServiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsProfessionalIndex),
		KeyConditionExpression: aws.String("professional_id = :pid"),
		FilterExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":     &types.AttributeValueMemberS{Value: professionalID},
			":pending": &types.AttributeValueMemberS{Value: string(entities.RequestStatusPendiente)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalRequestItems(out.Items)
}

func (r *ServiceRequestDynamoRepository) ListByRequester(ctx context.Context, requesterID string) ([]entities.ServiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsRequesterIndex),
		KeyConditionExpression: aws.String("requester_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requesterID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalRequestItems(out.Items)
}

// ListReservationsBetween returns slot-bound, non-rejected requests for the
// professional within [fromDate, toDate]. Free-form requests without a
// reserved time never block agenda slots.
func (r *ServiceRequestDynamoRepository) ListReservationsBetween(ctx context.Context, professionalID, fromDate, toDate string) ([]entities.ServiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsProfessionalIndex),
		KeyConditionExpression: aws.String("professional_id = :pid"),
		FilterExpression:       aws.String("service_date BETWEEN :from AND :to AND attribute_exists(reserved_time) AND #status <> :rejected"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":      &types.AttributeValueMemberS{Value: professionalID},
			":from":     &types.AttributeValueMemberS{Value: fromDate},
			":to":       &types.AttributeValueMemberS{Value: toDate},
			":rejected": &types.AttributeValueMemberS{Value: string(entities.RequestStatusRechazada)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalRequestItems(out.Items)
}

func (r *ServiceRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func unmarshalRequestItems(raw []map[string]types.AttributeValue) ([]entities.ServiceRequest, error) {
	items := make([]entities.ServiceRequest, 0, len(raw))
	for _, m := range raw {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceRequestItem(it))
	}
	return items, nil
}

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	return serviceRequestItem{
		ID:              sr.ID,
		RequesterID:     sr.RequesterID,
		ProfessionalID:  sr.ProfessionalID,
		RequestedAt:     sr.RequestedAt.UTC().Format(time.RFC3339Nano),
		ServiceDate:     sr.ServiceDate,
		ReservedTime:    sr.ReservedTime,
		DurationMinutes: sr.DurationMinutes,
		Note:            sr.Note,
		Status:          string(sr.Status),
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	requestedAt, _ := time.Parse(time.RFC3339Nano, it.RequestedAt)
	return entities.ServiceRequest{
		ID:              it.ID,
		RequesterID:     it.RequesterID,
		ProfessionalID:  it.ProfessionalID,
		RequestedAt:     requestedAt,
		ServiceDate:     it.ServiceDate,
		ReservedTime:    it.ReservedTime,
		DurationMinutes: it.DurationMinutes,
		Note:            it.Note,
		Status:          entities.RequestStatus(it.Status),
	}
}

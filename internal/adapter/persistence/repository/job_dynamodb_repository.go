package repository

import (
	"context"
	"strconv"
	"time"

	"app_oficios/internal/domain/entities"
	"app_oficios/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobsTableName  = "jobs"
	jobsRequestIndex      = "request_id-index"
	jobsProfessionalIndex = "professional_id-index"
	jobsRequesterIndex    = "requester_id-index"
)

type jobItem struct {
	ID             string `dynamodbav:"id"`
	RequestID      string `dynamodbav:"request_id"`
	RequesterID    string `dynamodbav:"requester_id"`
	ProfessionalID string `dynamodbav:"professional_id"`
	Status         string `dynamodbav:"status"`

	StartedAt  string `dynamodbav:"started_at,omitempty"`
	FinishedAt string `dynamodbav:"finished_at,omitempty"`
	ResumedAt  string `dynamodbav:"resumed_at,omitempty"`

	LastPausedAt             string `dynamodbav:"last_paused_at,omitempty"`
	WorkedBeforePauseSeconds int64  `dynamodbav:"worked_before_pause_seconds"`
	TotalWorkedSeconds       int64  `dynamodbav:"total_worked_seconds"`

	FinalDescription   string `dynamodbav:"final_description,omitempty"`
	FinalCost          string `dynamodbav:"final_cost,omitempty"`
	CancellationReason string `dynamodbav:"cancellation_reason,omitempty"`

	InvoiceID     string `dynamodbav:"invoice_id,omitempty"`
	PaymentStatus string `dynamodbav:"payment_status,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)
//   - GSI: professional_id-index (PK: professional_id)
//   - GSI: requester_id-index (PK: requester_id)
//
// Update rewrites the item wholesale (conditioned on existence) because
// lifecycle transitions change several fields together.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsRequestIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Items) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) ListByProfessional(ctx context.Context, professionalID string, status entities.JobStatus) ([]entities.Job, error) {
	return r.listByIndex(ctx, jobsProfessionalIndex, "professional_id", professionalID, status)
}

func (r *JobDynamoRepository) ListByRequester(ctx context.Context, requesterID string, status entities.JobStatus) ([]entities.Job, error) {
	return r.listByIndex(ctx, jobsRequesterIndex, "requester_id", requesterID, status)
}

// ListUnbilled scans for finished jobs without an invoice. The unbilled set
// is small and short-lived (invoices follow finalization quickly), so a
// filtered scan is acceptable here.
func (r *JobDynamoRepository) ListUnbilled(ctx context.Context) ([]entities.Job, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :finished AND attribute_not_exists(invoice_id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":finished": &types.AttributeValueMemberS{Value: string(entities.JobStatusFinalizado)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalJobItems(out.Items)
}

func (r *JobDynamoRepository) listByIndex(ctx context.Context, index, keyAttr, keyValue string, status entities.JobStatus) ([]entities.Job, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyAttr + " = :key"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key": &types.AttributeValueMemberS{Value: keyValue},
		},
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalJobItems(out.Items)
}

func unmarshalJobItems(raw []map[string]types.AttributeValue) ([]entities.Job, error) {
	items := make([]entities.Job, 0, len(raw))
	for _, m := range raw {
		var it jobItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromJobItem(it))
	}
	return items, nil
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:                       j.ID,
		RequestID:                j.RequestID,
		RequesterID:              j.RequesterID,
		ProfessionalID:           j.ProfessionalID,
		Status:                   string(j.Status),
		WorkedBeforePauseSeconds: j.WorkedBeforePauseSeconds,
		TotalWorkedSeconds:       j.TotalWorkedSeconds,
		FinalDescription:         j.FinalDescription,
		CancellationReason:       j.CancellationReason,
		InvoiceID:                j.InvoiceID,
		PaymentStatus:            j.PaymentStatus,
		CreatedAt:                j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:                j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	it.StartedAt = formatOptionalTime(j.StartedAt)
	it.FinishedAt = formatOptionalTime(j.FinishedAt)
	it.ResumedAt = formatOptionalTime(j.ResumedAt)
	it.LastPausedAt = formatOptionalTime(j.LastPausedAt)
	if j.FinalCost != 0 {
		it.FinalCost = floatToString(j.FinalCost)
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	finalCost, _ := strconv.ParseFloat(it.FinalCost, 64)
	return entities.Job{
		ID:                       it.ID,
		RequestID:                it.RequestID,
		RequesterID:              it.RequesterID,
		ProfessionalID:           it.ProfessionalID,
		Status:                   entities.JobStatus(it.Status),
		StartedAt:                parseOptionalTime(it.StartedAt),
		FinishedAt:               parseOptionalTime(it.FinishedAt),
		ResumedAt:                parseOptionalTime(it.ResumedAt),
		LastPausedAt:             parseOptionalTime(it.LastPausedAt),
		WorkedBeforePauseSeconds: it.WorkedBeforePauseSeconds,
		TotalWorkedSeconds:       it.TotalWorkedSeconds,
		FinalDescription:         it.FinalDescription,
		FinalCost:                finalCost,
		CancellationReason:       it.CancellationReason,
		InvoiceID:                it.InvoiceID,
		PaymentStatus:            it.PaymentStatus,
		CreatedAt:                createdAt,
		UpdatedAt:                updatedAt,
	}
}

func formatOptionalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

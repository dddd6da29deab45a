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

const defaultProfessionalsTableName = "professionals"

type dayAvailabilityItem struct {
	Weekday   int    `dynamodbav:"weekday"`
	WorkStart string `dynamodbav:"work_start"`
	WorkEnd   string `dynamodbav:"work_end"`
}

type professionalItem struct {
	ID        string                `dynamodbav:"id"`
	Name      string                `dynamodbav:"name"`
	LastName  string                `dynamodbav:"last_name"`
	Trade     string                `dynamodbav:"trade,omitempty"`
	ImageURL  string                `dynamodbav:"image_url,omitempty"`
	Agenda    []dayAvailabilityItem `dynamodbav:"agenda,omitempty"`
	CreatedAt string                `dynamodbav:"created_at"`
}

// ProfessionalDynamoRepository reads professional profiles from DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProfessionalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfessionalRepository = (*ProfessionalDynamoRepository)(nil)

func NewProfessionalDynamoRepository(ddb *dynamodb.Client) *ProfessionalDynamoRepository {
	return &ProfessionalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFESSIONALS_TABLE", defaultProfessionalsTableName),
	}
}

func (r *ProfessionalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Professional, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Professional{}, err
	}
	if len(out.Item) == 0 {
		return entities.Professional{}, nil
	}

	var it professionalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Professional{}, err
	}
	return fromProfessionalItem(it), nil
}

func fromProfessionalItem(it professionalItem) entities.Professional {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	agenda := make([]entities.DayAvailability, 0, len(it.Agenda))
	for _, d := range it.Agenda {
		agenda = append(agenda, entities.DayAvailability{
			Weekday:   time.Weekday(d.Weekday),
			WorkStart: d.WorkStart,
			WorkEnd:   d.WorkEnd,
		})
	}
	return entities.Professional{
		ID:        it.ID,
		Name:      it.Name,
		LastName:  it.LastName,
		Trade:     it.Trade,
		ImageURL:  it.ImageURL,
		Agenda:    agenda,
		CreatedAt: createdAt,
	}
}

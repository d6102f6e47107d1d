package repository

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type serviceItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Description    string `dynamodbav:"description"`
	Price          string `dynamodbav:"price"`
	EstimatedHours string `dynamodbav:"estimated_hours"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists catalog entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

// List returns every catalog entry in scan order; callers must not depend on
// ordering.
func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	services := make([]entities.Service, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []serviceItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			services = append(services, fromServiceItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return services, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		Price:          floatToString(s.Price),
		EstimatedHours: floatToString(s.EstimatedHours),
		CreatedAt:      timeToString(s.CreatedAt),
		UpdatedAt:      timeToString(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:             it.ID,
		Name:           it.Name,
		Description:    it.Description,
		Price:          stringToFloat(it.Price),
		EstimatedHours: stringToFloat(it.EstimatedHours),
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
}

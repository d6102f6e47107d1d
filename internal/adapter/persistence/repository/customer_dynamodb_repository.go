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

const defaultCustomersTableName = "customers"

type vehicleItem struct {
	ID           string `dynamodbav:"id"`
	Make         string `dynamodbav:"make"`
	Model        string `dynamodbav:"model"`
	Year         string `dynamodbav:"year"`
	VIN          string `dynamodbav:"vin"`
	LicensePlate string `dynamodbav:"license_plate"`
}

type customerItem struct {
	ID        string      `dynamodbav:"id"`
	Name      string      `dynamodbav:"name"`
	Email     string      `dynamodbav:"email"`
	Phone     string      `dynamodbav:"phone"`
	Address   string      `dynamodbav:"address"`
	Vehicle   vehicleItem `dynamodbav:"vehicle"`
	CreatedAt string      `dynamodbav:"created_at"`
	UpdatedAt string      `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists customers in DynamoDB. The owned vehicle
// is embedded in the customer item, never stored on its own.
//
// Table requirements:
//   - PK: id (string)
type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	customers := make([]entities.Customer, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []customerItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			customers = append(customers, fromCustomerItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return customers, nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		Vehicle: vehicleItem{
			ID:           c.Vehicle.ID,
			Make:         c.Vehicle.Make,
			Model:        c.Vehicle.Model,
			Year:         c.Vehicle.Year,
			VIN:          c.Vehicle.VIN,
			LicensePlate: c.Vehicle.LicensePlate,
		},
		CreatedAt: timeToString(c.CreatedAt),
		UpdatedAt: timeToString(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:      it.ID,
		Name:    it.Name,
		Email:   it.Email,
		Phone:   it.Phone,
		Address: it.Address,
		Vehicle: entities.Vehicle{
			ID:           it.Vehicle.ID,
			Make:         it.Vehicle.Make,
			Model:        it.Vehicle.Model,
			Year:         it.Vehicle.Year,
			VIN:          it.Vehicle.VIN,
			LicensePlate: it.Vehicle.LicensePlate,
		},
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
}

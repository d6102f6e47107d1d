package repository

import (
	"context"
	"errors"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteLineItem struct {
	ServiceID   string `dynamodbav:"service_id"`
	ServiceName string `dynamodbav:"service_name"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Subtotal    string `dynamodbav:"subtotal"`
}

type quoteItem struct {
	ID         string          `dynamodbav:"id"`
	CustomerID string          `dynamodbav:"customer_id"`
	Date       string          `dynamodbav:"date"`
	Items      []quoteLineItem `dynamodbav:"items"`
	Notes      string          `dynamodbav:"notes"`
	Status     string          `dynamodbav:"status"`
	Total      string          `dynamodbav:"total"`
	CreatedAt  string          `dynamodbav:"created_at"`
	UpdatedAt  string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items are embedded in the quote item with their captured unit prices,
// so a stored quote never re-reads the catalog.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// List returns every quote in scan order; callers must not depend on
// ordering.
func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	items, err := r.scanAll(ctx)
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

// UpdateStatus touches only the status attribute, leaving the stored items
// and total exactly as the last save wrote them. A missing id is reported as
// an empty quote, nil error.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// Delete is idempotent: DynamoDB DeleteItem succeeds whether or not the key
// exists.
func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ReferencesService scans the persisted quotes for a line item that still
// points at the given service. It backs the catalog deletion guard.
func (r *QuoteDynamoRepository) ReferencesService(ctx context.Context, serviceID string) (bool, error) {
	items, err := r.scanAll(ctx)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		for _, line := range it.Items {
			if line.ServiceID == serviceID {
				return true, nil
			}
		}
	}
	return false, nil
}

// ReferencesCustomer backs the customer deletion guard.
func (r *QuoteDynamoRepository) ReferencesCustomer(ctx context.Context, customerID string) (bool, error) {
	items, err := r.scanAll(ctx)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if it.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *QuoteDynamoRepository) scanAll(ctx context.Context) ([]quoteItem, error) {
	all := make([]quoteItem, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		all = append(all, items...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return all, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]quoteLineItem, 0, len(q.Items))
	for _, item := range q.Items {
		lines = append(lines, quoteLineItem{
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			UnitPrice:   floatToString(item.UnitPrice),
			Subtotal:    floatToString(item.Subtotal),
		})
	}
	return quoteItem{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		Date:       q.Date,
		Items:      lines,
		Notes:      q.Notes,
		Status:     string(q.Status),
		Total:      floatToString(q.Total),
		CreatedAt:  timeToString(q.CreatedAt),
		UpdatedAt:  timeToString(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.QuoteItem{
			ServiceID:   line.ServiceID,
			ServiceName: line.ServiceName,
			Quantity:    line.Quantity,
			UnitPrice:   stringToFloat(line.UnitPrice),
			Subtotal:    stringToFloat(line.Subtotal),
		})
	}
	return entities.Quote{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Date:       it.Date,
		Items:      items,
		Notes:      it.Notes,
		Status:     entities.QuoteStatus(it.Status),
		Total:      stringToFloat(it.Total),
		CreatedAt:  stringToTime(it.CreatedAt),
		UpdatedAt:  stringToTime(it.UpdatedAt),
	}
}

package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"motomind/internal/domain/entities"
	"motomind/internal/infrastructure/database"
	"motomind/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRecordsTableName = "service_records"

type selectionItem struct {
	ItemID   int    `dynamodbav:"item_id"`
	Name     string `dynamodbav:"name"`
	Quantity int    `dynamodbav:"quantity"`
	Charge   int64  `dynamodbav:"charge"`
}

type recordItem struct {
	ID              string          `dynamodbav:"id"`
	WorkshopID      string          `dynamodbav:"workshop_id"`
	CustomerName    string          `dynamodbav:"customer_name"`
	Phone           string          `dynamodbav:"phone"`
	BikeModel       string          `dynamodbav:"bike_model"`
	Odometer        int64           `dynamodbav:"odometer"`
	ServiceDate     string          `dynamodbav:"service_date"`
	NextServiceDate string          `dynamodbav:"next_service_date"`
	Parts           []selectionItem `dynamodbav:"parts"`
	Services        []selectionItem `dynamodbav:"services"`
	PartsTotal      int64           `dynamodbav:"parts_total"`
	LaborTotal      int64           `dynamodbav:"labor_total"`
	TotalAmount     int64           `dynamodbav:"total_amount"`
	Finalized       bool            `dynamodbav:"finalized"`
	FinalizedAt     string          `dynamodbav:"finalized_at,omitempty"`
	CreatedAt       string          `dynamodbav:"created_at"`
	UpdatedAt       string          `dynamodbav:"updated_at"`
	LastDeliveredAt string          `dynamodbav:"last_delivered_at,omitempty"`
	DeliveryCount   int             `dynamodbav:"delivery_count"`
}

// RecordDynamoRepository persists ServiceRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI workshop_id-service_date-index: workshop_id (HASH), service_date (RANGE, yyyy-mm-dd)
//
// Draft-only writes are conditional on finalized = false, so two concurrent
// finalizes can't both succeed.

type RecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRecordRepository = (*RecordDynamoRepository)(nil)

func NewRecordDynamoRepository(ddb *dynamodb.Client, tableName string) *RecordDynamoRepository {
	if tableName == "" {
		tableName = defaultRecordsTableName
	}
	return &RecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RecordDynamoRepository) Create(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	av, err := attributevalue.MarshalMap(toRecordItem(rec))
	if err != nil {
		return entities.ServiceRecord{}, err
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
		return entities.ServiceRecord{}, err
	}
	return rec, nil
}

func (r *RecordDynamoRepository) GetByID(ctx context.Context, workshopID, id string) (entities.ServiceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRecord{}, nil
	}

	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRecord{}, err
	}
	if it.WorkshopID != workshopID {
		return entities.ServiceRecord{}, nil
	}
	return fromRecordItem(it), nil
}

func (r *RecordDynamoRepository) Update(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	return r.putDraft(ctx, rec)
}

func (r *RecordDynamoRepository) Finalize(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	return r.putDraft(ctx, rec)
}

// putDraft replaces the stored record only while it is still a draft owned
// by the same workshop.
func (r *RecordDynamoRepository) putDraft(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	av, err := attributevalue.MarshalMap(toRecordItem(rec))
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #workshop_id = :workshop_id AND #finalized = :false"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#workshop_id": "workshop_id",
			"#finalized":   "finalized",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":workshop_id": &types.AttributeValueMemberS{Value: rec.WorkshopID},
			":false":       &types.AttributeValueMemberBOOL{Value: false},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRecord{}, conditionFailure(cfe.Item, rec.WorkshopID)
		}
		return entities.ServiceRecord{}, err
	}
	return rec, nil
}

// conditionFailure tells a finalized record apart from a missing one.
func conditionFailure(old map[string]types.AttributeValue, workshopID string) error {
	if len(old) == 0 {
		return nil
	}
	var it recordItem
	if err := attributevalue.UnmarshalMap(old, &it); err != nil {
		return err
	}
	if it.WorkshopID != workshopID {
		return nil
	}
	return interfaces.ErrRecordNotDraft
}

func (r *RecordDynamoRepository) MarkDelivered(ctx context.Context, workshopID, id string, at time.Time) (entities.ServiceRecord, error) {
	return r.update(ctx, workshopID, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #last_delivered_at = :at, #updated_at = :updated_at ADD #delivery_count :one"
		vals := map[string]types.AttributeValue{
			":at":         &types.AttributeValueMemberS{Value: formatTime(at)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":one":        &types.AttributeValueMemberN{Value: strconv.Itoa(1)},
		}
		names := map[string]string{
			"#last_delivered_at": "last_delivered_at",
			"#updated_at":        "updated_at",
			"#delivery_count":    "delivery_count",
		}
		return expr, vals, names
	})
}

func (r *RecordDynamoRepository) update(
	ctx context.Context,
	workshopID, id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ServiceRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	values[":workshop_id"] = &types.AttributeValueMemberS{Value: workshopID}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #workshop_id = :workshop_id"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#workshop_id": "workshop_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRecord{}, nil
		}
		return entities.ServiceRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceRecord{}, nil
	}
	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRecord{}, err
	}
	return fromRecordItem(it), nil
}

// List queries the workshop's GSI partition newest first. DynamoDB has no
// offset, so pages before the requested one are read and skipped.
func (r *RecordDynamoRepository) List(ctx context.Context, workshopID string, filter entities.RecordFilter) ([]entities.ServiceRecord, error) {
	keyCond := "#workshop_id = :workshop_id"
	names := map[string]string{"#workshop_id": "workshop_id"}
	values := map[string]types.AttributeValue{
		":workshop_id": &types.AttributeValueMemberS{Value: workshopID},
	}
	switch {
	case filter.StartDate != nil && filter.EndDate != nil:
		keyCond += " AND #service_date BETWEEN :start AND :end"
	case filter.StartDate != nil:
		keyCond += " AND #service_date >= :start"
	case filter.EndDate != nil:
		keyCond += " AND #service_date <= :end"
	}
	if filter.StartDate != nil {
		names["#service_date"] = "service_date"
		values[":start"] = &types.AttributeValueMemberS{Value: formatDate(*filter.StartDate)}
	}
	if filter.EndDate != nil {
		names["#service_date"] = "service_date"
		values[":end"] = &types.AttributeValueMemberS{Value: formatDate(*filter.EndDate)}
	}

	want := filter.Offset + filter.Limit
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(database.RecordsByServiceDateIndex),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(false),
	})

	var records []entities.ServiceRecord
	for p.HasMorePages() && (filter.Limit <= 0 || len(records) < want) {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []recordItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			records = append(records, fromRecordItem(it))
		}
	}
	return window(records, filter.Offset, filter.Limit), nil
}

func toRecordItem(rec entities.ServiceRecord) recordItem {
	return recordItem{
		ID:              rec.ID,
		WorkshopID:      rec.WorkshopID,
		CustomerName:    rec.CustomerName,
		Phone:           rec.Phone,
		BikeModel:       string(rec.BikeModel),
		Odometer:        rec.Odometer,
		ServiceDate:     formatDate(rec.ServiceDate),
		NextServiceDate: formatDate(rec.NextServiceDate),
		Parts:           toSelectionItems(rec.Parts),
		Services:        toSelectionItems(rec.Services),
		PartsTotal:      rec.PartsTotal,
		LaborTotal:      rec.LaborTotal,
		TotalAmount:     rec.TotalAmount,
		Finalized:       rec.Finalized,
		FinalizedAt:     formatTimePtr(rec.FinalizedAt),
		CreatedAt:       formatTime(rec.CreatedAt),
		UpdatedAt:       formatTime(rec.UpdatedAt),
		LastDeliveredAt: formatTimePtr(rec.LastDeliveredAt),
		DeliveryCount:   rec.DeliveryCount,
	}
}

func fromRecordItem(it recordItem) entities.ServiceRecord {
	return entities.ServiceRecord{
		ID:              it.ID,
		WorkshopID:      it.WorkshopID,
		CustomerName:    it.CustomerName,
		Phone:           it.Phone,
		BikeModel:       entities.BikeModel(it.BikeModel),
		Odometer:        it.Odometer,
		ServiceDate:     parseDate(it.ServiceDate),
		NextServiceDate: parseDate(it.NextServiceDate),
		Parts:           fromSelectionItems(it.Parts),
		Services:        fromSelectionItems(it.Services),
		PartsTotal:      it.PartsTotal,
		LaborTotal:      it.LaborTotal,
		TotalAmount:     it.TotalAmount,
		Finalized:       it.Finalized,
		FinalizedAt:     parseTimePtr(it.FinalizedAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		LastDeliveredAt: parseTimePtr(it.LastDeliveredAt),
		DeliveryCount:   it.DeliveryCount,
	}
}

func toSelectionItems(in []entities.LineItemSelection) []selectionItem {
	out := make([]selectionItem, 0, len(in))
	for _, s := range in {
		out = append(out, selectionItem{ItemID: s.ItemID, Name: s.Name, Quantity: s.Quantity, Charge: s.Charge})
	}
	return out
}

func fromSelectionItems(in []selectionItem) []entities.LineItemSelection {
	out := make([]entities.LineItemSelection, 0, len(in))
	for _, s := range in {
		out = append(out, entities.LineItemSelection{ItemID: s.ItemID, Name: s.Name, Quantity: s.Quantity, Charge: s.Charge})
	}
	return out
}

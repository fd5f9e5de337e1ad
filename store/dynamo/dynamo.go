package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/Vibhuti270/virtual-herbal-backend/models"
	"github.com/Vibhuti270/virtual-herbal-backend/store"
)

const (
	statsPK        = "STATS"
	visitCountSK   = "visitCount"
	visitCountAttr = "Count"
)

type ClientOptions struct {
	DevMode         bool
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type DynamoHerbalStore struct {
	client        *dynamodb.Client
	tableName     string
	accountsTable string
}

func NewDynamoHerbalStore(ctx context.Context, opts ClientOptions, tableName string, accountsTable string) (*DynamoHerbalStore, error) {
	client, err := newDynamoDBClient(ctx, opts)
	if err != nil {
		return nil, err
	}

	tables, err := getTables(client, ctx)
	if err != nil {
		return nil, err
	}

	for _, name := range []string{tableName, accountsTable} {
		found := false
		for _, table := range tables {
			if table == name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("given table name '%s' not found in dynamodb", name)
		}
	}

	return &DynamoHerbalStore{client: client, tableName: tableName, accountsTable: accountsTable}, nil
}

func (dynamoStore *DynamoHerbalStore) GetVisitCounter(ctx context.Context) (models.VisitCounter, error) {
	dc, err := getItem[dynamoCounter](dynamoStore, ctx, statsPK, visitCountSK, true)
	if err != nil {
		return models.VisitCounter{}, err
	}

	return counterFromDynamo(dc), nil
}

func (dynamoStore *DynamoHerbalStore) CreateVisitCounter(ctx context.Context, count int) error {
	return createItem(dynamoStore, ctx, counterToDynamo(statsPK, visitCountSK, models.VisitCounter{Count: count}))
}

func (dynamoStore *DynamoHerbalStore) IncrementVisitCount(ctx context.Context, delta int) (int, error) {
	return incrementCounter(dynamoStore, ctx, statsPK, visitCountSK, visitCountAttr, delta)
}

func (dynamoStore *DynamoHerbalStore) ListAccounts(ctx context.Context, maxResults int32, pageToken string) (models.AccountPage, error) {
	startKey, err := decodeCursor(pageToken)
	if err != nil {
		return models.AccountPage{}, err
	}

	input := &dynamodb.ScanInput{
		TableName:         aws.String(dynamoStore.accountsTable),
		ExclusiveStartKey: startKey,
	}
	if maxResults > 0 {
		input.Limit = aws.Int32(maxResults)
	}

	resp, err := dynamoStore.client.Scan(ctx, input)
	if err != nil {
		return models.AccountPage{}, fmt.Errorf("scan accounts failed: %w", err)
	}

	var items []dynamoAccount
	if err := attributevalue.UnmarshalListOfMaps(resp.Items, &items); err != nil {
		return models.AccountPage{}, fmt.Errorf("failed to unmarshal accounts: %w", err)
	}

	accounts := make([]models.Account, 0, len(items))
	for _, item := range items {
		accounts = append(accounts, accountFromDynamo(item))
	}

	nextPageToken, err := encodeCursor(resp.LastEvaluatedKey)
	if err != nil {
		return models.AccountPage{}, err
	}

	return models.AccountPage{Accounts: accounts, NextPageToken: nextPageToken}, nil
}

var (
	_ store.StatsStore       = (*DynamoHerbalStore)(nil)
	_ store.AccountDirectory = (*DynamoHerbalStore)(nil)
)

package services

import (
	"context"
	"errors"
	"fmt"

	"kindred_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoMatchStore persists match records in the MatchRecords table.
type DynamoMatchStore struct {
	Dynamo *DynamoService
}

func pairKey(pairID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pairId": &types.AttributeValueMemberS{Value: pairID},
	}
}

func (s *DynamoMatchStore) Get(ctx context.Context, pairID string) (*models.MatchRecord, error) {
	item, err := s.Dynamo.GetItem(ctx, models.MatchRecordsTable, pairKey(pairID))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var record models.MatchRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match record %s: %w", pairID, err)
	}
	return &record, nil
}

func (s *DynamoMatchStore) Put(ctx context.Context, record *models.MatchRecord) error {
	return s.Dynamo.PutItem(ctx, models.MatchRecordsTable, record)
}

func (s *DynamoMatchStore) Delete(ctx context.Context, pairID string) error {
	return s.Dynamo.DeleteItem(ctx, models.MatchRecordsTable, pairKey(pairID))
}

func (s *DynamoMatchStore) ListByUser(ctx context.Context, userID string) ([]models.MatchRecord, error) {
	// A record involves the user as either side of the canonical pair, so a
	// key query cannot serve this; scan and filter on both attributes.
	filter := func(item map[string]types.AttributeValue) bool {
		for _, field := range []string{"userA", "userB"} {
			if attr, ok := item[field]; ok {
				if v, ok := attr.(*types.AttributeValueMemberS); ok && v.Value == userID {
					return true
				}
			}
		}
		return false
	}

	var records []models.MatchRecord
	if err := s.Dynamo.ScanWithFilter(ctx, models.MatchRecordsTable, filter, &records); err != nil {
		return nil, err
	}
	return records, nil
}

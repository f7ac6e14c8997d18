package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kindred_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserDirectory is the external profile store the matching core reads from.
// Implementations must honor context cancellation; the core never mutates
// profiles.
type UserDirectory interface {
	// GetProfile returns the profile for the given user, or ErrNotFound.
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	// ListProfiles returns every profile in the candidate pool.
	ListProfiles(ctx context.Context) ([]models.Profile, error)
}

// directoryTimeout bounds every read against the external directory so a
// slow scan cannot hold a request open indefinitely.
const directoryTimeout = 10 * time.Second

// UserDirectoryService reads profiles from the DynamoDB UserProfiles table.
type UserDirectoryService struct {
	Dynamo *DynamoService
}

// GetProfile retrieves a user profile by ID
func (ud *UserDirectoryService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, directoryTimeout)
	defer cancel()

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ud.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch profile %s: %w", userID, err)
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", userID, err)
	}
	return &profile, nil
}

// ListProfiles scans the full profile table. Discovery applies its own
// exclusion and filtering on top of the returned pool.
func (ud *UserDirectoryService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, directoryTimeout)
	defer cancel()

	var profiles []models.Profile
	if err := ud.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, nil, &profiles); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

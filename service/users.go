package service

import (
	"context"
	"fmt"

	"github.com/Vibhuti270/virtual-herbal-backend/models"
)

// Largest page the identity directory hands out per request
const userPageSize = 1000

// ListAllUsers walks the account directory page by page until the cursor runs
// out. Any failed page fails the whole export.
func (s *Service) ListAllUsers(ctx context.Context) (models.UserList, error) {
	users := make([]models.UserRecord, 0)
	pageToken := ""

	for {
		page, err := s.Accounts.ListAccounts(ctx, userPageSize, pageToken)
		if err != nil {
			return models.UserList{}, fmt.Errorf("list users after %d records: %w", len(users), err)
		}

		for _, account := range page.Accounts {
			users = append(users, toUserRecord(account))
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	return models.UserList{TotalUsers: len(users), Users: users}, nil
}

func toUserRecord(account models.Account) models.UserRecord {
	displayName := account.DisplayName
	if displayName == "" {
		displayName = models.AnonymousDisplayName
	}

	return models.UserRecord{
		Uid:         account.Uid,
		Email:       account.Email,
		DisplayName: displayName,
	}
}

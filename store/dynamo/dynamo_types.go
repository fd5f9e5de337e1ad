package dynamo

import (
	"github.com/Vibhuti270/virtual-herbal-backend/models"
)

type dynamoCounter struct {
	PK    string `dynamodbav:"PK"`
	SK    string `dynamodbav:"SK"`
	Count int    `dynamodbav:"Count"`
}

func counterToDynamo(pk string, sk string, c models.VisitCounter) dynamoCounter {
	return dynamoCounter{
		PK:    pk,
		SK:    sk,
		Count: c.Count,
	}
}

func counterFromDynamo(dc dynamoCounter) models.VisitCounter {
	return models.VisitCounter{Count: dc.Count}
}

type dynamoAccount struct {
	Uid         string `dynamodbav:"Uid"`
	Email       string `dynamodbav:"Email,omitempty"`
	DisplayName string `dynamodbav:"DisplayName,omitempty"`
}

// Map Dynamo -> domain Account
func accountFromDynamo(da dynamoAccount) models.Account {
	return models.Account{
		Uid:         da.Uid,
		Email:       da.Email,
		DisplayName: da.DisplayName,
	}
}

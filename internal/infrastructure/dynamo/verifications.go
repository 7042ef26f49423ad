package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pampered-pooch/site-api/internal/domain"
	"github.com/pampered-pooch/site-api/internal/pkg/otp"
)

// VerificationStore is the external backing store for pending contact-form
// codes. PK: email. A reissue overwrites the item; expires_at doubles as the
// table's TTL attribute, so expired items are swept without our involvement.
type VerificationStore struct {
	client    *dynamodb.Client
	tableName string
}

func NewVerificationStore(client *dynamodb.Client, tableName string) *VerificationStore {
	return &VerificationStore{client: client, tableName: tableName}
}

// Issue generates a code and stores it, replacing any pending code for email.
func (s *VerificationStore) Issue(ctx context.Context, email, name string) (string, error) {
	code, err := otp.NewCode()
	if err != nil {
		return "", err
	}

	rec := domain.VerificationRecord{
		Email:     normalize(email),
		Code:      code,
		Name:      name,
		ExpiresAt: time.Now().Add(domain.CodeTTL).Unix(),
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return "", fmt.Errorf("marshal verification: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// Check compares the submitted code against the pending item for email.
// The consume on match is a conditional delete keyed on the stored code, so
// two concurrent checks cannot both succeed against the same code.
func (s *VerificationStore) Check(ctx context.Context, email, code string) (domain.CheckResult, error) {
	key := strKey("email", normalize(email))

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       key,
	})
	if err != nil {
		return 0, err
	}
	if out.Item == nil {
		return domain.CheckNotFound, nil
	}
	var rec domain.VerificationRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return 0, err
	}

	if time.Now().Unix() > rec.ExpiresAt {
		_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.tableName),
			Key:       key,
		})
		if err != nil {
			return 0, err
		}
		return domain.CheckExpired, nil
	}
	if rec.Code != code {
		return domain.CheckMismatch, nil
	}

	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 key,
		ConditionExpression:      aws.String("#c = :code"),
		ExpressionAttributeNames: map[string]string{"#c": "code"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			// Consumed or replaced between the read and the delete.
			return domain.CheckNotFound, nil
		}
		return 0, err
	}
	return domain.CheckVerified, nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

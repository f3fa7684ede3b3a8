package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client this adapter uses. Satisfied
// by *dynamodb.Client and by test doubles.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Key addresses a single item by its composite primary key.
type Key struct {
	PK string
	SK string
}

// Store wraps the document store. Every operation is single-item or
// single-partition; the store's native per-item atomicity is the only
// consistency guarantee offered.
type Store struct {
	client DynamoAPI
}

// New creates a Store over the given client.
func New(client DynamoAPI) *Store {
	return &Store{client: client}
}

// Put writes an item unconditionally, creating or overwriting it.
func (s *Store) Put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshaling item for %s: %w", table, err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("putting item into %s: %w", table, err)
	}
	return nil
}

// QueryPrefix returns every item in a partition whose sort key starts with
// the given prefix, unmarshaled into out (a pointer to a slice). No ordering
// guarantee beyond the store's natural sort-key order.
func (s *Store) QueryPrefix(ctx context.Context, table, pk, skPrefix string, out any) error {
	keyCond := expression.Key("PK").Equal(expression.Value(pk)).
		And(expression.Key("SK").BeginsWith(skPrefix))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return fmt.Errorf("building prefix query for %s: %w", table, err)
	}
	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return fmt.Errorf("querying %s by prefix: %w", table, err)
	}
	if err := attributevalue.UnmarshalListOfMaps(result.Items, out); err != nil {
		return fmt.Errorf("unmarshaling items from %s: %w", table, err)
	}
	return nil
}

// QueryIndex performs an equality lookup against a secondary index.
func (s *Store) QueryIndex(ctx context.Context, table, index, keyName, keyValue string, out any) error {
	keyCond := expression.Key(keyName).Equal(expression.Value(keyValue))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return fmt.Errorf("building index query for %s/%s: %w", table, index, err)
	}
	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return fmt.Errorf("querying index %s on %s: %w", index, table, err)
	}
	if err := attributevalue.UnmarshalListOfMaps(result.Items, out); err != nil {
		return fmt.Errorf("unmarshaling items from %s/%s: %w", table, index, err)
	}
	return nil
}

// Update applies the builder's changes to the addressed item and unmarshals
// the post-update item into out. The update is conditioned on the item
// already existing; a missing key yields ErrItemNotFound rather than the
// upsert the store would otherwise perform.
func (s *Store) Update(ctx context.Context, table string, key Key, ub *UpdateBuilder, out any) error {
	upd, err := ub.expr()
	if err != nil {
		return err
	}
	expr, err := expression.NewBuilder().
		WithUpdate(upd).
		WithCondition(expression.AttributeExists(expression.Name("PK"))).
		Build()
	if err != nil {
		return fmt.Errorf("building update expression for %s: %w", table, err)
	}
	keyAV, err := attributevalue.MarshalMap(map[string]string{"PK": key.PK, "SK": key.SK})
	if err != nil {
		return fmt.Errorf("marshaling key for %s: %w", table, err)
	}
	result, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       keyAV,
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrItemNotFound
		}
		return fmt.Errorf("updating item in %s: %w", table, err)
	}
	if err := attributevalue.UnmarshalMap(result.Attributes, out); err != nil {
		return fmt.Errorf("unmarshaling updated item from %s: %w", table, err)
	}
	return nil
}

// Delete removes a single item. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, table string, key Key) error {
	keyAV, err := attributevalue.MarshalMap(map[string]string{"PK": key.PK, "SK": key.SK})
	if err != nil {
		return fmt.Errorf("marshaling key for %s: %w", table, err)
	}
	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       keyAV,
	})
	if err != nil {
		return fmt.Errorf("deleting item from %s: %w", table, err)
	}
	return nil
}

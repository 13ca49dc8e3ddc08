/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/entityresolve/datastore"
	resolveerrors "github.com/suparena/entityresolve/errors"
	"github.com/suparena/entityresolve/registry"
)

// Client is the subset of the DynamoDB API this backend calls. The
// aws-sdk-go-v2 *dynamodb.Client satisfies it; tests substitute fakes.
type Client interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *sdk.UpdateItemInput, optFns ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *sdk.BatchWriteItemInput, optFns ...func(*sdk.Options)) (*sdk.BatchWriteItemOutput, error)
}

// DynamodbDataStore implements datastore.DataStore[T] using AWS DynamoDB
// as the underlying store. Entity kinds share a single table; each
// record carries a Kind attribute injected at persist time.
type DynamodbDataStore[T any] struct {
	client    Client
	tableName string
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros fills the key patterns of an index map ("ENTITY#{BBID}")
// with attribute values taken from keysInput.
func expandMacros(indexMap map[string]string, keysInput any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(keysInput)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keysInput: %w", err)
	}

	res := make(map[string]string, len(indexMap))

	for fieldName, template := range indexMap {
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			key := strings.Trim(macro, "{}")

			val, ok := av[key]
			if !ok {
				return ""
			}

			switch tv := val.(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				// Null, binary and set members have no sensible key form.
				return ""
			}
		})
		res[fieldName] = expanded
	}

	return res, nil
}

// NewClient initializes a DynamoDB client from static credentials.
func NewClient(accessKey, secretKey, region string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// New constructs a DynamodbDataStore for type T on an existing client.
func New[T any](client Client, tableName string) *DynamodbDataStore[T] {
	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
	}
}

// NewFromCredentials constructs a client and datastore in one step.
func NewFromCredentials[T any](accessKey, secretKey, region, tableName string) (*DynamodbDataStore[T], error) {
	client, err := NewClient(accessKey, secretKey, region)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return New[T](client, tableName), nil
}

// TableName returns the table this store reads and writes.
func (d *DynamodbDataStore[T]) TableName() string {
	return d.tableName
}

// GetOne retrieves a single record using a string key, typically a BBID.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	indexMap, ok := registry.IndexMapFor[T]()
	if !ok {
		return nil, errors.New("no index map found for record type")
	}

	expanded := expandStringKey(indexMap, key)

	keyMap, err := buildKeyFromExpanded(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		var zero T
		return nil, resolveerrors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return result, nil
}

// Put stores the given record, expanding the index-map macros into the
// table's partition and sort keys. Records implementing datastore.Kinded
// additionally get a Kind attribute for polymorphic queries.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	indexMap, ok := registry.IndexMapFor[T]()
	if !ok {
		return errors.New("no index map found for record type")
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	expanded, err := expandMacros(indexMap, entity)
	if err != nil {
		return err
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}

	if kinded, ok := any(entity).(datastore.Kinded); ok {
		av["Kind"] = &types.AttributeValueMemberS{Value: kinded.Kind()}
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes a record using a string key.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	indexMap, ok := registry.IndexMapFor[T]()
	if !ok {
		return errors.New("no index map found for record type")
	}

	expanded := expandStringKey(indexMap, key)

	keyMap, err := buildKeyFromExpanded(expanded)
	if err != nil {
		return fmt.Errorf("failed to build key for Delete: %w", err)
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// buildUpdateExpression transforms a map of field->value into:
//   - an update expression (e.g., "SET #f0 = :v0, #f1 = :v1")
//   - a corresponding map of expression attribute names
//   - a corresponding map of expression attribute values
func buildUpdateExpression(updates map[string]interface{}) (string,
	map[string]string,
	map[string]types.AttributeValue,
	error) {

	if len(updates) == 0 {
		return "", nil, nil, errors.New("no updates provided")
	}

	setClauses := make([]string, 0, len(updates))
	exprAttrNames := make(map[string]string)
	exprAttrValues := make(map[string]types.AttributeValue)

	i := 0
	for field, val := range updates {
		placeholderName := fmt.Sprintf("#f%d", i)
		placeholderValue := fmt.Sprintf(":v%d", i)

		setClauses = append(setClauses, fmt.Sprintf("%s = %s", placeholderName, placeholderValue))
		exprAttrNames[placeholderName] = field

		av, err := attributevalue.Marshal(val)
		if err != nil {
			return "", nil, nil, fmt.Errorf("unhandled update value for field %q: %w", field, err)
		}
		exprAttrValues[placeholderValue] = av

		i++
	}

	return "SET " + strings.Join(setClauses, ", "), exprAttrNames, exprAttrValues, nil
}

// UpdateWithCondition applies a set of field updates guarded by a
// condition expression. A failed condition surfaces as
// errors.ErrConditionFailed so callers can distinguish contention from
// transport errors.
func (d *DynamodbDataStore[T]) UpdateWithCondition(ctx context.Context, keyInput any, updates map[string]interface{}, condition string) error {
	indexMap, ok := registry.IndexMapFor[T]()
	if !ok {
		return errors.New("no index map found for record type")
	}

	key, err := d.getKey(keyInput, indexMap)
	if err != nil {
		return fmt.Errorf("failed to build key: %w", err)
	}

	updateExpr, exprAttrNames, exprAttrValues, err := buildUpdateExpression(updates)
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	input := &sdk.UpdateItemInput{
		TableName:                 &d.tableName,
		Key:                       key,
		UpdateExpression:          &updateExpr,
		ExpressionAttributeNames:  exprAttrNames,
		ExpressionAttributeValues: exprAttrValues,
		ConditionExpression:       &condition,
		ReturnValues:              types.ReturnValueNone,
	}

	_, err = d.client.UpdateItem(ctx, input)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return resolveerrors.NewConditionFailedError("update", condition)
		}
		return fmt.Errorf("UpdateWithCondition failed: %w", err)
	}

	return nil
}

// getKey resolves keyInput, either a plain string key or a record whose
// fields feed the macros, into the table's primary key.
func (d *DynamodbDataStore[T]) getKey(keyInput any, indexMap map[string]string) (map[string]types.AttributeValue, error) {
	if s, ok := keyInput.(string); ok {
		return buildKeyFromExpanded(expandStringKey(indexMap, s))
	}

	expanded, err := expandMacros(indexMap, keyInput)
	if err != nil {
		return nil, err
	}
	return buildKeyFromExpanded(expanded)
}

// buildKeyFromExpanded builds a table key from the expanded index map.
// It requires non-empty values for "PK" and "SK".
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded index map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

// expandStringKey replaces every macro in the index-map values with the
// provided key. Used when the caller supplies a bare BBID rather than a
// full record.
func expandStringKey(indexMap map[string]string, key string) map[string]string {
	expanded := make(map[string]string, len(indexMap))
	for field, template := range indexMap {
		expanded[field] = macroPattern.ReplaceAllString(template, key)
	}
	return expanded
}

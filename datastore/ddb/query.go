/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/entityresolve/registry"
	"github.com/suparena/entityresolve/storagemodels"
)

// Query performs a query against the entity table using the provided
// parameters. It uses the Kind attribute (injected at persist time) to
// select the correct unmarshal function from the kind registry so that
// each record is unmarshaled to its proper type, letting live and
// import records share a table.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]interface{}, error) {
	input := &dynamodb.QueryInput{
		TableName:                 &params.TableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ScanIndexForward:          params.ScanIndexForward,
	}
	out, err := d.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	var results []interface{}
	for _, item := range out.Items {
		var kind string
		if attr, ok := item["Kind"]; ok {
			if err := attributevalue.Unmarshal(attr, &kind); err != nil {
				return nil, fmt.Errorf("failed to unmarshal Kind: %w", err)
			}
		} else {
			return nil, fmt.Errorf("missing Kind attribute in record")
		}

		unmarshalFn, err := registry.UnmarshalFuncFor(kind)
		if err != nil {
			// Fallback: unregistered kinds unmarshal into a generic map.
			var generic map[string]interface{}
			if err := attributevalue.UnmarshalMap(item, &generic); err != nil {
				return nil, fmt.Errorf("failed to unmarshal generic record: %w", err)
			}
			results = append(results, generic)
			continue
		}

		obj, err := unmarshalFn(item)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal record for kind %q: %w", kind, err)
		}
		results = append(results, obj)
	}

	return results, nil
}

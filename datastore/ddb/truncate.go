/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// batchWriteMax is the DynamoDB BatchWriteItem request limit.
const batchWriteMax = 25

// Truncate removes every record from the table by scanning keys and
// batch-deleting them. Intended for test fixtures and import staging
// resets; a production table should be dropped and recreated instead.
func (d *DynamodbDataStore[T]) Truncate(ctx context.Context) error {
	projection := "PK, SK"
	var startKey map[string]types.AttributeValue

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		out, err := d.client.Scan(ctx, &sdk.ScanInput{
			TableName:            &d.tableName,
			ProjectionExpression: &projection,
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return fmt.Errorf("truncate scan failed: %w", err)
		}

		for start := 0; start < len(out.Items); start += batchWriteMax {
			end := start + batchWriteMax
			if end > len(out.Items) {
				end = len(out.Items)
			}

			requests := make([]types.WriteRequest, 0, end-start)
			for _, item := range out.Items[start:end] {
				requests = append(requests, types.WriteRequest{
					DeleteRequest: &types.DeleteRequest{
						Key: map[string]types.AttributeValue{
							"PK": item["PK"],
							"SK": item["SK"],
						},
					},
				})
			}

			batch := map[string][]types.WriteRequest{d.tableName: requests}
			for len(batch[d.tableName]) > 0 {
				resp, err := d.client.BatchWriteItem(ctx, &sdk.BatchWriteItemInput{
					RequestItems: batch,
				})
				if err != nil {
					return fmt.Errorf("truncate batch delete failed: %w", err)
				}
				// Unprocessed keys are resubmitted until drained.
				batch = resp.UnprocessedItems
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

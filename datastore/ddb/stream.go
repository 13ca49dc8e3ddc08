/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/entityresolve/storagemodels"
)

// Stream performs a streaming query against the entity table with
// configurable options. Records are delivered on the returned channel
// until the query is exhausted or the context is canceled.
func (d *DynamodbDataStore[T]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)

	go d.streamWorker(ctx, params, options, resultCh)

	return resultCh
}

// streamWorker handles the actual streaming logic
func (d *DynamodbDataStore[T]) streamWorker(
	ctx context.Context,
	params *storagemodels.QueryParams,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult[T],
) {
	defer close(resultCh)

	var itemIndex int64
	var pageNumber int
	startTime := time.Now()
	var pageErrors []error

	reportProgress := func(lastKey map[string]types.AttributeValue) {
		if options.ProgressHandler == nil {
			return
		}
		progress := storagemodels.StreamProgress{
			ItemsProcessed: atomic.LoadInt64(&itemIndex),
			PagesProcessed: pageNumber,
			LastKey:        lastKey,
			Errors:         pageErrors,
			StartTime:      startTime,
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
		}
		options.ProgressHandler(progress)
	}

	input := &dynamodb.QueryInput{
		TableName:                 &params.TableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     aws.Int32(options.PageSize),
		ScanIndexForward:          params.ScanIndexForward,
	}

	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := d.queryWithRetry(ctx, input, options)
		if err != nil {
			if options.ErrorHandler == nil || !options.ErrorHandler(err) {
				resultCh <- storagemodels.StreamResult[T]{
					Error: fmt.Errorf("query failed: %w", err),
					Meta: storagemodels.StreamMeta{
						Index:      atomic.LoadInt64(&itemIndex),
						PageNumber: pageNumber,
						Timestamp:  time.Now(),
					},
				}
				return
			}

			// Error handler asked to continue.
			pageErrors = append(pageErrors, err)
			continue
		}

		pageNumber++

		for _, item := range out.Items {
			select {
			case <-ctx.Done():
				return
			default:
			}

			result := d.processItem(item, atomic.LoadInt64(&itemIndex), pageNumber)
			atomic.AddInt64(&itemIndex, 1)

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}

			if result.Error != nil {
				pageErrors = append(pageErrors, result.Error)
			}
		}

		reportProgress(out.LastEvaluatedKey)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}

	reportProgress(nil)
}

// queryWithRetry executes a query with configurable retry logic
func (d *DynamodbDataStore[T]) queryWithRetry(
	ctx context.Context,
	input *dynamodb.QueryInput,
	options storagemodels.StreamOptions,
) (*dynamodb.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := d.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		// No sleep after the last attempt.
		if attempt < options.MaxRetries {
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", options.MaxRetries, lastErr)
}

// processItem converts a raw item to a typed result
func (d *DynamodbDataStore[T]) processItem(
	item map[string]types.AttributeValue,
	index int64,
	pageNumber int,
) storagemodels.StreamResult[T] {
	meta := storagemodels.StreamMeta{
		Index:      index,
		PageNumber: pageNumber,
		Timestamp:  time.Now(),
	}

	rawCopy := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		rawCopy[k] = v
	}

	var result T
	if err := attributevalue.UnmarshalMap(item, &result); err != nil {
		return storagemodels.StreamResult[T]{
			Error: fmt.Errorf("failed to unmarshal record to type %T: %w", result, err),
			Raw:   rawCopy,
			Meta:  meta,
		}
	}

	return storagemodels.StreamResult[T]{
		Item: result,
		Raw:  rawCopy,
		Meta: meta,
	}
}

// isRetryableError determines if a storage error is retryable
func isRetryableError(err error) bool {
	switch err.(type) {
	case *types.ProvisionedThroughputExceededException:
		return true
	case *types.RequestLimitExceeded:
		return true
	case *types.InternalServerError:
		return true
	}

	if awsErr, ok := err.(interface{ IsRetryable() bool }); ok {
		return awsErr.IsRetryable()
	}

	return false
}

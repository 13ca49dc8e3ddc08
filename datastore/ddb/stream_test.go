/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/entityresolve/models"
	"github.com/suparena/entityresolve/storagemodels"
)

// queryStep is one scripted response from the fake client.
type queryStep struct {
	out *sdk.QueryOutput
	err error
}

// fakeClient satisfies Client with a scripted sequence of Query
// responses. Calls past the end of the script return an empty page.
type fakeClient struct {
	mu    sync.Mutex
	steps []queryStep
	calls int
}

func (f *fakeClient) Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls >= len(f.steps) {
		f.calls++
		return &sdk.QueryOutput{}, nil
	}
	step := f.steps[f.calls]
	f.calls++
	return step.out, step.err
}

func (f *fakeClient) queryCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeClient) GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	return nil, fmt.Errorf("GetItem not scripted")
}

func (f *fakeClient) PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	return nil, fmt.Errorf("PutItem not scripted")
}

func (f *fakeClient) DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	return nil, fmt.Errorf("DeleteItem not scripted")
}

func (f *fakeClient) UpdateItem(ctx context.Context, params *sdk.UpdateItemInput, optFns ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error) {
	return nil, fmt.Errorf("UpdateItem not scripted")
}

func (f *fakeClient) Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	return nil, fmt.Errorf("Scan not scripted")
}

func (f *fakeClient) BatchWriteItem(ctx context.Context, params *sdk.BatchWriteItemInput, optFns ...func(*sdk.Options)) (*sdk.BatchWriteItemOutput, error) {
	return nil, fmt.Errorf("BatchWriteItem not scripted")
}

func entityItem(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":   &types.AttributeValueMemberS{Value: "ENTITY#" + id},
		"SK":   &types.AttributeValueMemberS{Value: "ENTITY#" + id},
		"BBID": &types.AttributeValueMemberS{Value: id},
		"Type": &types.AttributeValueMemberS{Value: "Work"},
		"Kind": &types.AttributeValueMemberS{Value: "Work"},
	}
}

func streamParams() *storagemodels.QueryParams {
	return &storagemodels.QueryParams{
		TableName:              "test-table",
		KeyConditionExpression: "PK = :pk",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: "ENTITY#w1"},
		},
	}
}

func TestStreamRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("RecoversFromThrottle", func(t *testing.T) {
		fake := &fakeClient{steps: []queryStep{
			{err: &types.ProvisionedThroughputExceededException{}},
			{out: &sdk.QueryOutput{Items: []map[string]types.AttributeValue{
				entityItem("w1"),
				entityItem("w2"),
			}}},
		}}
		ds := New[models.Entity](fake, "test-table")

		var got []models.Entity
		for result := range ds.Stream(ctx, streamParams(),
			storagemodels.WithMaxRetries(2),
			storagemodels.WithRetryBackoff(time.Millisecond),
		) {
			if result.Error != nil {
				t.Fatalf("Unexpected error: %v", result.Error)
			}
			got = append(got, result.Item)
		}

		if len(got) != 2 {
			t.Fatalf("Expected 2 items, got %d", len(got))
		}
		if got[0].BBID != "w1" || got[1].BBID != "w2" {
			t.Errorf("Unexpected items: %+v", got)
		}
		if calls := fake.queryCalls(); calls != 2 {
			t.Errorf("Expected 2 query calls (1 throttle + 1 success), got %d", calls)
		}
	})

	t.Run("RetriesExhausted", func(t *testing.T) {
		fake := &fakeClient{steps: []queryStep{
			{err: &types.ProvisionedThroughputExceededException{}},
			{err: &types.ProvisionedThroughputExceededException{}},
			{err: &types.ProvisionedThroughputExceededException{}},
		}}
		ds := New[models.Entity](fake, "test-table")

		var errResults int
		for result := range ds.Stream(ctx, streamParams(),
			storagemodels.WithMaxRetries(1),
			storagemodels.WithRetryBackoff(time.Millisecond),
		) {
			if result.Error == nil {
				t.Fatalf("Expected error result, got item %+v", result.Item)
			}
			errResults++
		}

		if errResults != 1 {
			t.Errorf("Expected a single error result, got %d", errResults)
		}
		// Attempt 0 plus 1 retry.
		if calls := fake.queryCalls(); calls != 2 {
			t.Errorf("Expected 2 query calls, got %d", calls)
		}
	})

	t.Run("NonRetryableFailsFast", func(t *testing.T) {
		fake := &fakeClient{steps: []queryStep{
			{err: fmt.Errorf("validation error")},
		}}
		ds := New[models.Entity](fake, "test-table")

		var errResults int
		for result := range ds.Stream(ctx, streamParams(),
			storagemodels.WithMaxRetries(3),
			storagemodels.WithRetryBackoff(time.Millisecond),
		) {
			if result.Error == nil {
				t.Fatalf("Expected error result, got item %+v", result.Item)
			}
			errResults++
		}

		if errResults != 1 {
			t.Errorf("Expected a single error result, got %d", errResults)
		}
		if calls := fake.queryCalls(); calls != 1 {
			t.Errorf("Expected no retries for a non-retryable error, got %d calls", calls)
		}
	})
}

func TestStreamErrorHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("ContinueAfterError", func(t *testing.T) {
		fake := &fakeClient{steps: []queryStep{
			{err: fmt.Errorf("transient page failure")},
			{out: &sdk.QueryOutput{Items: []map[string]types.AttributeValue{
				entityItem("w1"),
			}}},
		}}
		ds := New[models.Entity](fake, "test-table")

		var handled int
		var got []models.Entity
		for result := range ds.Stream(ctx, streamParams(),
			storagemodels.WithMaxRetries(0),
			storagemodels.WithErrorHandler(func(err error) bool {
				handled++
				return true
			}),
		) {
			if result.Error != nil {
				t.Fatalf("Error should have been swallowed by the handler: %v", result.Error)
			}
			got = append(got, result.Item)
		}

		if handled != 1 {
			t.Errorf("Expected error handler to run once, got %d", handled)
		}
		if len(got) != 1 || got[0].BBID != "w1" {
			t.Errorf("Expected the post-error page to be delivered, got %+v", got)
		}
	})

	t.Run("StopOnError", func(t *testing.T) {
		fake := &fakeClient{steps: []queryStep{
			{err: fmt.Errorf("fatal page failure")},
			{out: &sdk.QueryOutput{Items: []map[string]types.AttributeValue{
				entityItem("w1"),
			}}},
		}}
		ds := New[models.Entity](fake, "test-table")

		var results []storagemodels.StreamResult[models.Entity]
		for result := range ds.Stream(ctx, streamParams(),
			storagemodels.WithMaxRetries(0),
			storagemodels.WithErrorHandler(func(err error) bool { return false }),
		) {
			results = append(results, result)
		}

		if len(results) != 1 || results[0].Error == nil {
			t.Fatalf("Expected a single error result, got %+v", results)
		}
		if calls := fake.queryCalls(); calls != 1 {
			t.Errorf("Expected streaming to stop after the failed page, got %d calls", calls)
		}
	})
}

func TestStreamProgress(t *testing.T) {
	ctx := context.Background()

	fake := &fakeClient{steps: []queryStep{
		{out: &sdk.QueryOutput{
			Items:            []map[string]types.AttributeValue{entityItem("w1")},
			LastEvaluatedKey: entityItem("w1"),
		}},
		{out: &sdk.QueryOutput{
			Items: []map[string]types.AttributeValue{entityItem("w2")},
		}},
	}}
	ds := New[models.Entity](fake, "test-table")

	var progress []storagemodels.StreamProgress
	for result := range ds.Stream(ctx, streamParams(),
		storagemodels.WithPageSize(1),
		storagemodels.WithProgressHandler(func(p storagemodels.StreamProgress) {
			progress = append(progress, p)
		}),
	) {
		if result.Error != nil {
			t.Fatalf("Unexpected error: %v", result.Error)
		}
	}

	if len(progress) == 0 {
		t.Fatal("Progress handler was not called")
	}
	final := progress[len(progress)-1]
	if final.ItemsProcessed != 2 {
		t.Errorf("Expected 2 items processed, got %d", final.ItemsProcessed)
	}
	if final.PagesProcessed != 2 {
		t.Errorf("Expected 2 pages processed, got %d", final.PagesProcessed)
	}
	if len(final.Errors) != 0 {
		t.Errorf("Expected no page errors, got %v", final.Errors)
	}
}

func TestStreamMetadata(t *testing.T) {
	ctx := context.Background()
	startTime := time.Now()

	fake := &fakeClient{steps: []queryStep{
		{out: &sdk.QueryOutput{
			Items:            []map[string]types.AttributeValue{entityItem("w1"), entityItem("w2")},
			LastEvaluatedKey: entityItem("w2"),
		}},
		{out: &sdk.QueryOutput{
			Items: []map[string]types.AttributeValue{entityItem("w3")},
		}},
	}}
	ds := New[models.Entity](fake, "test-table")

	var lastIndex int64 = -1
	count := 0
	for result := range ds.Stream(ctx, streamParams(), storagemodels.WithPageSize(2)) {
		if result.Error != nil {
			t.Fatalf("Unexpected error: %v", result.Error)
		}
		count++

		if result.Meta.Index <= lastIndex {
			t.Errorf("Index should be increasing: got %d after %d", result.Meta.Index, lastIndex)
		}
		lastIndex = result.Meta.Index

		if result.Meta.PageNumber < 1 {
			t.Errorf("Page number should be >= 1, got %d", result.Meta.PageNumber)
		}
		if result.Meta.Timestamp.Before(startTime) {
			t.Error("Timestamp should be after test start time")
		}
		if result.Raw == nil {
			t.Error("Raw data should not be nil")
		}
	}

	if count != 3 {
		t.Errorf("Expected 3 items across 2 pages, got %d", count)
	}
}

func TestStreamContextCancellation(t *testing.T) {
	cancelCtx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := &fakeClient{steps: []queryStep{
		{out: &sdk.QueryOutput{
			Items:            []map[string]types.AttributeValue{entityItem("w1")},
			LastEvaluatedKey: entityItem("w1"),
		}},
	}}
	ds := New[models.Entity](fake, "test-table")

	count := 0
	for range ds.Stream(cancelCtx, streamParams(), storagemodels.WithPageSize(1)) {
		count++
	}

	if count != 0 {
		t.Errorf("Expected no results after cancellation, got %d", count)
	}
}

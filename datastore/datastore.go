/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/entityresolve/storagemodels"
)

// DataStore is the model handle exposed per entity kind. Implementations
// exist for DynamoDB (package ddb), embedded SQLite (package sqlite) and
// an in-memory mock (package mock).
type DataStore[T any] interface {
	GetOne(ctx context.Context, key string) (*T, error)

	Put(ctx context.Context, entity T) error

	UpdateWithCondition(ctx context.Context, keyInput any, updates map[string]interface{}, condition string) error

	Query(ctx context.Context, params *storagemodels.QueryParams) ([]interface{}, error)

	Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]

	Delete(ctx context.Context, key string) error

	// Truncate removes every record the store holds. Intended for test
	// fixtures and import staging resets, not production data.
	Truncate(ctx context.Context) error
}

// Kinded is implemented by records that carry a polymorphic kind
// discriminator. Backends inject the kind as an attribute at persist
// time so that mixed-kind queries can unmarshal each record to its
// proper type.
type Kinded interface {
	Kind() string
}

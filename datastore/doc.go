/*
Package datastore defines the core interfaces for entityresolve's data
persistence layer.

The main interface is DataStore[T], which provides generic CRUD
operations for any record type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    UpdateWithCondition(ctx context.Context, keyInput any, updates map[string]interface{}, condition string) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]interface{}, error)
	    Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
	    Delete(ctx context.Context, key string) error
	    Truncate(ctx context.Context) error
	}

Implementations:
  - ddb: DynamoDB implementation with single-table design
  - sqlite: embedded implementation for local catalog work
  - mock: in-memory mock implementation for testing

The package uses Go generics to ensure type safety at compile time while
keeping the backends interchangeable behind the model registry.
*/
package datastore

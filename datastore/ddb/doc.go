/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design: live entities, import staging records and
    editors share a table, discriminated by a Kind attribute injected
    at persist time
  - Macro-based key expansion (e.g. "ENTITY#{BBID}")
  - Polymorphic queries resolved through the kind registry
  - Streaming with retry logic and progress reporting
  - Conditional updates for optimistic locking
  - Table truncation via scan + batch delete

Key Features:

Macro Expansion:
Keys use macros that are replaced with record field values:

	indexMap := map[string]string{
	    "PK": "ENTITY#{BBID}",   // Becomes "ENTITY#123e4567-..."
	    "SK": "ENTITY#{BBID}",
	}

Streaming:
The streaming API supports configurable options:

	results := store.Stream(ctx, params,
	    storagemodels.WithBufferSize(100),
	    storagemodels.WithPageSize(25),
	    storagemodels.WithMaxRetries(3),
	)

For usage examples, see the integration tests.
*/
package ddb

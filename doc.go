/*
Package entityresolve is the entity-resolution and validation helper
layer of a bibliographic catalog: it validates externally supplied BBIDs,
resolves entity-kind names to model handles, filters identifier types for
form rendering and computes display links and titles.

The library is organized leaves-first:

  - bbid: BBID (UUID-form identifier) validation and normalization
  - models: record types and the closed entity/import kind enumerations,
    plus the identifier-type filters
  - display: canonical entity links and page titles
  - registry: the model registry, built once at startup and resolved by
    request handlers
  - datastore: the generic DataStore[T] model-handle contract, with
    DynamoDB, SQLite and mock backends
  - editor: edit-count maintenance on editor records

Basic usage:

	db, _ := ddb.NewClient(accessKey, secretKey, region)
	works := ddb.New[models.Entity](db, table)
	// ... one handle per kind ...

	reg := registry.New(registry.Models{Work: works}) // and the other kinds

	model, err := reg.EntityModelByName(typeName)
	if err != nil {
	    // unrecognized type, surface as a client error
	}
	entity, err := model.GetOne(ctx, bbidFromRequest)

All resolution and helper functions are stateless or read-only after
construction and safe for concurrent use from request handlers.
*/
package entityresolve

/*
Package registry resolves entity kinds to model handles.

The model registry is an explicitly constructed, immutable value. It is
built once during process startup from the externally supplied handle
set and passed by reference to every consumer:

	reg := registry.New(registry.Models{
	    Work:       workStore,
	    Creator:    creatorStore,
	    // ...
	    ImportWork: workImportStore,
	})

	model, err := reg.EntityModelByName("Work")

A lookup miss is always a distinct, reportable error
(errors.ErrUnrecognizedEntityType vs errors.ErrUnrecognizedImportType),
never a silent nil, so request handlers can tell which registry failed.

The package also carries two init-time tables used by the storage
backends:

  - the kind registry, mapping kind discriminators ("Work",
    "WorkImport", "Editor") to unmarshal functions for polymorphic
    query results
  - the index-map registry, mapping record types to their storage key
    patterns ("ENTITY#{BBID}")

Both tables are populated during initialization and read-only afterwards.
*/
package registry

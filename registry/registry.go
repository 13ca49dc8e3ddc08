/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"github.com/suparena/entityresolve/datastore"
	"github.com/suparena/entityresolve/errors"
	"github.com/suparena/entityresolve/models"
)

// EntityModel is the model handle resolved per entity kind.
type EntityModel = datastore.DataStore[models.Entity]

// Models is the externally supplied handle set the registry is built
// from: one model handle per live entity kind and one per import kind.
// Construction of the handles (connecting to storage, table names) is
// the caller's responsibility; the registry wraps them unmodified.
type Models struct {
	Creator     EntityModel
	Edition     EntityModel
	Publication EntityModel
	Publisher   EntityModel
	Work        EntityModel

	ImportCreator     EntityModel
	ImportEdition     EntityModel
	ImportPublication EntityModel
	ImportPublisher   EntityModel
	ImportWork        EntityModel
}

// Registry resolves entity and import kind names to model handles. It is
// constructed once at startup and is read-only afterwards, so any number
// of request-handling goroutines may resolve concurrently.
type Registry struct {
	entities map[models.EntityType]EntityModel
	imports  map[models.ImportType]EntityModel
}

// New builds a Registry from the supplied model handles.
func New(m Models) *Registry {
	return &Registry{
		entities: map[models.EntityType]EntityModel{
			models.EntityTypeCreator:     m.Creator,
			models.EntityTypeEdition:     m.Edition,
			models.EntityTypePublication: m.Publication,
			models.EntityTypePublisher:   m.Publisher,
			models.EntityTypeWork:        m.Work,
		},
		imports: map[models.ImportType]EntityModel{
			models.ImportTypeCreator:     m.ImportCreator,
			models.ImportTypeEdition:     m.ImportEdition,
			models.ImportTypePublication: m.ImportPublication,
			models.ImportTypePublisher:   m.ImportPublisher,
			models.ImportTypeWork:        m.ImportWork,
		},
	}
}

// EntityModel returns the live model handle for the given kind. A miss
// is always a reportable error, never a nil handle.
func (r *Registry) EntityModel(t models.EntityType) (EntityModel, error) {
	model, ok := r.entities[t]
	if !ok {
		return nil, errors.NewUnrecognizedEntityTypeError(string(t))
	}
	return model, nil
}

// ImportModel returns the import-staging model handle for the given
// kind.
func (r *Registry) ImportModel(t models.ImportType) (EntityModel, error) {
	model, ok := r.imports[t]
	if !ok {
		return nil, errors.NewUnrecognizedImportTypeError(string(t))
	}
	return model, nil
}

// EntityModelByName resolves a raw type name, typically from a request
// path, to a live model handle.
func (r *Registry) EntityModelByName(name string) (EntityModel, error) {
	t, err := models.ParseEntityType(name)
	if err != nil {
		return nil, errors.NewUnrecognizedEntityTypeError(name)
	}
	return r.EntityModel(t)
}

// ImportModelByName resolves a raw type name to an import model handle.
func (r *Registry) ImportModelByName(name string) (EntityModel, error) {
	t, err := models.ParseImportType(name)
	if err != nil {
		return nil, errors.NewUnrecognizedImportTypeError(name)
	}
	return r.ImportModel(t)
}

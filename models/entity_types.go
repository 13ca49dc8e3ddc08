/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import "fmt"

// EntityType identifies one of the fixed entity kinds handled by this
// library. The set is closed; anything else is rejected at the lookup
// boundary rather than silently passed through.
type EntityType string

const (
	EntityTypeCreator     EntityType = "Creator"
	EntityTypeEdition     EntityType = "Edition"
	EntityTypePublication EntityType = "Publication"
	EntityTypePublisher   EntityType = "Publisher"
	EntityTypeWork        EntityType = "Work"
)

// ImportType identifies the staging counterpart of an entity kind used
// during bulk imports. It mirrors EntityType name for name.
type ImportType string

const (
	ImportTypeCreator     ImportType = "Creator"
	ImportTypeEdition     ImportType = "Edition"
	ImportTypePublication ImportType = "Publication"
	ImportTypePublisher   ImportType = "Publisher"
	ImportTypeWork        ImportType = "Work"
)

// EntityTypes returns all entity kinds in their canonical order.
func EntityTypes() []EntityType {
	return []EntityType{
		EntityTypeCreator,
		EntityTypeEdition,
		EntityTypePublication,
		EntityTypePublisher,
		EntityTypeWork,
	}
}

// ImportTypes returns all import kinds in their canonical order.
func ImportTypes() []ImportType {
	return []ImportType{
		ImportTypeCreator,
		ImportTypeEdition,
		ImportTypePublication,
		ImportTypePublisher,
		ImportTypeWork,
	}
}

// Valid reports whether t is one of the known entity kinds.
func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeCreator, EntityTypeEdition, EntityTypePublication,
		EntityTypePublisher, EntityTypeWork:
		return true
	}
	return false
}

func (t EntityType) String() string { return string(t) }

// Valid reports whether t is one of the known import kinds.
func (t ImportType) Valid() bool {
	return EntityType(t).Valid()
}

func (t ImportType) String() string { return string(t) }

// Kind returns the kind name used for polymorphic storage, e.g.
// "CreatorImport". Import records share a table with live records and
// need a distinct discriminator.
func (t ImportType) Kind() string {
	return string(t) + "Import"
}

// ParseEntityType converts a raw type name into an EntityType.
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown entity type %q", s)
	}
	return t, nil
}

// ParseImportType converts a raw type name into an ImportType.
func ParseImportType(s string) (ImportType, error) {
	t := ImportType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown import type %q", s)
	}
	return t, nil
}

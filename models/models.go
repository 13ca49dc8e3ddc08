/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"github.com/go-openapi/strfmt"
)

// Alias is a human-readable name attached to an entity. An entity may
// carry many aliases; exactly one is flagged as the default for display.
type Alias struct {
	// Name is the display form of the alias.
	Name string `json:"Name"`

	// SortName is the collation form, e.g. "Tolkien, J. R. R.".
	SortName string `json:"SortName,omitempty"`

	// Primary marks the alias preferred for display.
	Primary bool `json:"Primary,omitempty"`
}

// IdentifierType categorizes external identifiers (ISBN, VIAF, ...) that
// may be attached to entities of a given kind.
type IdentifierType struct {
	// ID is the unique numeric id of the identifier type.
	ID int64 `json:"Id"`

	// Label is the display name, e.g. "ISBN-13".
	Label string `json:"Label"`

	// EntityType is the entity kind this identifier type naturally
	// belongs to.
	EntityType EntityType `json:"EntityType"`

	// DetectionRegex recognizes pasted values that look like this
	// identifier, before normalization.
	DetectionRegex string `json:"DetectionRegex,omitempty"`

	// ValidationRegex accepts normalized values.
	ValidationRegex string `json:"ValidationRegex,omitempty"`

	// Deprecated marks types that may no longer be added to entities.
	Deprecated bool `json:"Deprecated,omitempty"`
}

// Identifier is a single external identifier value on an entity.
type Identifier struct {
	// TypeID references the IdentifierType this value belongs to.
	TypeID int64 `json:"TypeId"`

	// Type is the resolved identifier type, when loaded.
	Type *IdentifierType `json:"Type,omitempty"`

	// Value is the raw identifier string, e.g. "978-3-16-148410-0".
	Value string `json:"Value"`
}

// IdentifierSet is the ordered collection of identifiers on an entity.
type IdentifierSet struct {
	ID          int64        `json:"Id,omitempty"`
	Identifiers []Identifier `json:"Identifiers"`
}

// Entity is the live record for a creative work, person, publication,
// publisher or edition. Records are owned by the external persistence
// layer; this library only reads them.
type Entity struct {
	// BBID uniquely identifies the entity. Callers validate untrusted
	// values with bbid.IsValid before use. The tag pins the attribute
	// name the "ENTITY#{BBID}" key macro expands from.
	BBID string `json:"BBID" dynamodbav:"BBID"`

	// Type is the entity kind.
	Type EntityType `json:"Type"`

	// DefaultAlias is the alias used for display, if any.
	DefaultAlias *Alias `json:"DefaultAlias,omitempty"`

	// IdentifierSet holds the entity's external identifiers, if any.
	IdentifierSet *IdentifierSet `json:"IdentifierSet,omitempty"`

	// DataID references the current data row backing this entity.
	DataID int64 `json:"DataId,omitempty"`

	// Revision is the revision number of the current state.
	Revision int `json:"Revision,omitempty"`

	// Disabled marks soft-deleted entities.
	Disabled bool `json:"Disabled,omitempty"`

	// Timestamp when the entity was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt,omitempty"`

	// Timestamp when the entity was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt,omitempty"`
}

// Kind returns the kind name used as the polymorphic storage
// discriminator.
func (e Entity) Kind() string { return string(e.Type) }

// AliasName returns the default alias name, or empty when the entity has
// no populated default alias.
func (e *Entity) AliasName() string {
	if e == nil || e.DefaultAlias == nil {
		return ""
	}
	return e.DefaultAlias.Name
}

// Identifiers returns the entity's identifiers, or nil when none are
// attached.
func (e *Entity) Identifiers() []Identifier {
	if e == nil || e.IdentifierSet == nil {
		return nil
	}
	return e.IdentifierSet.Identifiers
}

// Editor is an account that submits revisions. Only the fields the
// helper layer touches are modeled.
type Editor struct {
	// ID is the unique editor id, the attribute behind the
	// "EDITOR#{ID}" key macro.
	ID string `json:"ID" dynamodbav:"ID"`

	// Name is the editor's account name.
	Name string `json:"Name"`

	// TotalRevisions counts every revision the editor ever submitted.
	TotalRevisions int `json:"TotalRevisions"`

	// RevisionsApplied counts revisions accepted into the canonical
	// history.
	RevisionsApplied int `json:"RevisionsApplied"`

	// Timestamp of the editor's last activity.
	// Format: date-time
	ActiveAt *strfmt.DateTime `json:"ActiveAt,omitempty"`
}

// Kind returns the storage discriminator for editor records.
func (e Editor) Kind() string { return "Editor" }

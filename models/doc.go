/*
Package models defines the bibliographic record types shared across the
library: entities, aliases, identifiers, identifier types and editors,
plus the closed enumerations of entity and import kinds.

All records here are read-only to this library. They are created and
destroyed by the external persistence layer; this package only gives them
a typed shape and a few derived accessors.

The identifier-type filters answer the question "which identifier types
may be attached to this entity" for form rendering:

	applicable := models.IdentifierTypesForEntity(allTypes, entity)

Types already used by an entity remain applicable even when they belong
to a different kind, so legacy cross-kind identifiers stay editable.
*/
package models

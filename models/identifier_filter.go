/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

// IdentifierTypesForEntityType returns the identifier types that
// naturally belong to the given entity kind. Input order is preserved.
func IdentifierTypesForEntityType(all []IdentifierType, entityType EntityType) []IdentifierType {
	var matched []IdentifierType
	for _, t := range all {
		if t.EntityType == entityType {
			matched = append(matched, t)
		}
	}
	return matched
}

// IdentifierTypesForEntity returns the identifier types applicable to an
// existing entity: every type that naturally belongs to the entity's
// kind, plus any type already used by one of the entity's identifiers.
// The second clause keeps legacy cross-kind identifiers editable on
// records that carry them. Input order is preserved and no duplicates
// are introduced. A nil entity yields nil.
func IdentifierTypesForEntity(all []IdentifierType, entity *Entity) []IdentifierType {
	if entity == nil {
		return nil
	}
	identifiers := entity.Identifiers()
	if len(identifiers) == 0 {
		return IdentifierTypesForEntityType(all, entity.Type)
	}

	attached := make(map[int64]struct{}, len(identifiers))
	for _, id := range identifiers {
		typeID := id.TypeID
		if typeID == 0 && id.Type != nil {
			typeID = id.Type.ID
		}
		attached[typeID] = struct{}{}
	}

	var matched []IdentifierType
	for _, t := range all {
		if t.EntityType == entity.Type {
			matched = append(matched, t)
			continue
		}
		if _, ok := attached[t.ID]; ok {
			matched = append(matched, t)
		}
	}
	return matched
}

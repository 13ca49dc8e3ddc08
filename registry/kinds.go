/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/entityresolve/models"
)

// Built-in kind registrations. Live and import kinds share the Entity
// record shape; the import kinds carry an "Import" suffix in their
// storage discriminator so mixed queries can tell them apart.
func init() {
	unmarshalEntity := func(item map[string]types.AttributeValue) (interface{}, error) {
		e := &models.Entity{}
		if err := attributevalue.UnmarshalMap(item, e); err != nil {
			return nil, err
		}
		return e, nil
	}

	for _, t := range models.EntityTypes() {
		RegisterKind(string(t), unmarshalEntity)
	}
	for _, t := range models.ImportTypes() {
		RegisterKind(t.Kind(), unmarshalEntity)
	}

	RegisterKind("Editor", func(item map[string]types.AttributeValue) (interface{}, error) {
		e := &models.Editor{}
		if err := attributevalue.UnmarshalMap(item, e); err != nil {
			return nil, err
		}
		return e, nil
	})

	RegisterIndexMap[models.Entity](map[string]string{
		"PK": "ENTITY#{BBID}",
		"SK": "ENTITY#{BBID}",
	})
	RegisterIndexMap[models.Editor](map[string]string{
		"PK": "EDITOR#{ID}",
		"SK": "EDITOR#{ID}",
	})
}

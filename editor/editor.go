/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package editor provides helpers over editor records: the edit-count
// increment applied after every submitted revision.
package editor

import (
	"context"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/entityresolve/datastore"
	"github.com/suparena/entityresolve/models"
)

// Store is the model handle for editor records.
type Store = datastore.DataStore[models.Editor]

// IncrementEditCount bumps the editor's total revision count and
// refreshes the activity timestamp. The update is conditional on the
// editor row existing, so an unknown editor id is a deterministic error
// rather than a silently created row.
func IncrementEditCount(ctx context.Context, store Store, editorID string) error {
	current, err := store.GetOne(ctx, editorID)
	if err != nil {
		return err
	}

	now := strfmt.DateTime(time.Now().UTC())
	updates := map[string]interface{}{
		"TotalRevisions": current.TotalRevisions + 1,
		"ActiveAt":       now.String(),
	}

	return store.UpdateWithCondition(ctx, editorID, updates, "attribute_exists(PK)")
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package editor

import (
	"context"
	"testing"

	"github.com/suparena/entityresolve/datastore/mock"
	"github.com/suparena/entityresolve/datastore/sqlite"
	"github.com/suparena/entityresolve/errors"
	"github.com/suparena/entityresolve/models"
)

func TestIncrementEditCount(t *testing.T) {
	ctx := context.Background()

	t.Run("IncrementsAndTouches", func(t *testing.T) {
		db, err := sqlite.Open(":memory:")
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer db.Close()

		store, err := sqlite.New[models.Editor](db, "editors", func(e models.Editor) string {
			return e.ID
		})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		if err := store.Put(ctx, models.Editor{ID: "alice", Name: "Alice", TotalRevisions: 41}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		if err := IncrementEditCount(ctx, store, "alice"); err != nil {
			t.Fatalf("IncrementEditCount failed: %v", err)
		}

		got, err := store.GetOne(ctx, "alice")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if got.TotalRevisions != 42 {
			t.Errorf("expected 42 total revisions, got %d", got.TotalRevisions)
		}
		if got.ActiveAt == nil {
			t.Error("expected ActiveAt to be refreshed")
		}
	})

	t.Run("UnknownEditor", func(t *testing.T) {
		store := mock.New[models.Editor]().WithGetKeyFunc(func(e models.Editor) string {
			return e.ID
		})

		err := IncrementEditCount(ctx, store, "nobody")
		if !errors.IsNotFound(err) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})

	t.Run("ConditionFailurePropagates", func(t *testing.T) {
		injected := errors.NewConditionFailedError("update", "attribute_exists(PK)")
		store := mock.New[models.Editor]().
			WithGetKeyFunc(func(e models.Editor) string { return e.ID }).
			WithUpdateError(injected)

		if err := store.Put(ctx, models.Editor{ID: "alice"}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		err := IncrementEditCount(ctx, store, "alice")
		if !errors.IsConditionFailed(err) {
			t.Errorf("expected condition-failed error, got %v", err)
		}
	})
}

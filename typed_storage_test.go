/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entityresolve

import (
	"testing"

	"github.com/suparena/entityresolve/datastore/mock"
	"github.com/suparena/entityresolve/models"
	"github.com/suparena/entityresolve/registry"
)

func newEntityStore() *mock.DataStore[models.Entity] {
	return mock.New[models.Entity]().WithGetKeyFunc(func(e models.Entity) string {
		return e.BBID
	})
}

func TestTypedStorage(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		storage := NewTypedStorage[models.Entity]()

		// Register datastore
		workStore := newEntityStore()
		err := storage.Register("Work", workStore)
		if err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		// Get datastore
		retrieved, err := storage.Get("Work")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if retrieved == nil {
			t.Fatal("Retrieved store is nil")
		}

		// List datastores
		keys := storage.List()
		if len(keys) != 1 || keys[0] != "Work" {
			t.Fatalf("Expected [Work], got %v", keys)
		}

		// Remove datastore
		err = storage.Remove("Work")
		if err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}

		// Verify removal
		_, err = storage.Get("Work")
		if err == nil {
			t.Fatal("Expected error after removal")
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		storage := NewTypedStorage[models.Entity]()

		if err := storage.Register("Work", newEntityStore()); err != nil {
			t.Fatalf("First registration failed: %v", err)
		}
		if err := storage.Register("Work", newEntityStore()); err == nil {
			t.Fatal("Expected error on duplicate registration")
		}
	})
}

func TestMultiTypeStorage(t *testing.T) {
	mts := NewMultiTypeStorage()

	entityStore := newEntityStore()
	if err := RegisterDataStore(mts, "Work", entityStore); err != nil {
		t.Fatalf("Failed to register entity store: %v", err)
	}

	editorStore := mock.New[models.Editor]().WithGetKeyFunc(func(e models.Editor) string {
		return e.ID
	})
	if err := RegisterDataStore(mts, "Editor", editorStore); err != nil {
		t.Fatalf("Failed to register editor store: %v", err)
	}

	// Same key under different record types must not collide.
	if err := RegisterDataStore[models.Editor](mts, "Work", editorStore); err != nil {
		t.Fatalf("Keys should be scoped per record type: %v", err)
	}

	got, err := GetDataStore[models.Entity](mts, "Work")
	if err != nil {
		t.Fatalf("Failed to get entity store: %v", err)
	}
	if got == nil {
		t.Fatal("Retrieved entity store is nil")
	}

	if _, err := GetDataStore[models.Entity](mts, "Editor"); err == nil {
		t.Fatal("Expected miss for editor key under entity type")
	}

	if err := RemoveDataStore[models.Editor](mts, "Editor"); err != nil {
		t.Fatalf("Failed to remove editor store: %v", err)
	}
	keys := ListDataStores[models.Editor](mts)
	if len(keys) != 1 || keys[0] != "Work" {
		t.Fatalf("Expected [Work], got %v", keys)
	}
}

func TestEntityModels(t *testing.T) {
	registerAll := func(t *testing.T, mts *MultiTypeStorage) map[string]*mock.DataStore[models.Entity] {
		t.Helper()
		stores := make(map[string]*mock.DataStore[models.Entity])
		for _, et := range models.EntityTypes() {
			stores[string(et)] = newEntityStore()
		}
		for _, it := range models.ImportTypes() {
			stores[it.Kind()] = newEntityStore()
		}
		for key, store := range stores {
			if err := RegisterDataStore(mts, key, store); err != nil {
				t.Fatalf("Failed to register %q: %v", key, err)
			}
		}
		return stores
	}

	t.Run("AssemblesAllKinds", func(t *testing.T) {
		mts := NewMultiTypeStorage()
		stores := registerAll(t, mts)

		m, err := EntityModels(mts)
		if err != nil {
			t.Fatalf("Failed to assemble: %v", err)
		}

		reg := registry.New(m)
		for _, et := range models.EntityTypes() {
			handle, err := reg.EntityModel(et)
			if err != nil {
				t.Fatalf("Failed to resolve %q: %v", et, err)
			}
			if handle != stores[string(et)] {
				t.Errorf("Kind %q resolved to the wrong handle", et)
			}
		}
		for _, it := range models.ImportTypes() {
			handle, err := reg.ImportModel(it)
			if err != nil {
				t.Fatalf("Failed to resolve import %q: %v", it, err)
			}
			if handle != stores[it.Kind()] {
				t.Errorf("Import kind %q resolved to the wrong handle", it)
			}
		}
	})

	t.Run("MissingKindFails", func(t *testing.T) {
		mts := NewMultiTypeStorage()
		registerAll(t, mts)
		if err := RemoveDataStore[models.Entity](mts, models.ImportTypeWork.Kind()); err != nil {
			t.Fatalf("Failed to remove store: %v", err)
		}

		if _, err := EntityModels(mts); err == nil {
			t.Fatal("Expected assembly to fail with a missing kind")
		}
	})
}

func TestStorageManager(t *testing.T) {
	sm := NewStorageManager()

	if err := sm.RegisterDataStore("Work", newEntityStore()); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}
	if err := sm.RegisterDataStore("Work", newEntityStore()); err == nil {
		t.Fatal("Expected error on duplicate registration")
	}

	ds, err := sm.GetDataStore("Work")
	if err != nil {
		t.Fatalf("Failed to get: %v", err)
	}
	if _, ok := ds.(*mock.DataStore[models.Entity]); !ok {
		t.Fatalf("Unexpected store type %T", ds)
	}

	if _, err := sm.GetDataStore("Nope"); err == nil {
		t.Fatal("Expected error for unknown key")
	}
}

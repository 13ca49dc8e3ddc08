/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/entityresolve/models"
)

func TestExpandMacros(t *testing.T) {
	bbid := "123e4567-e89b-12d3-a456-426614174000"

	t.Run("EntityKeys", func(t *testing.T) {
		created := strfmt.DateTime(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
		entity := models.Entity{
			BBID:      bbid,
			Type:      models.EntityTypeWork,
			CreatedAt: &created,
		}

		indexMap := map[string]string{
			"PK": "ENTITY#{BBID}",
			"SK": "ENTITY#{BBID}",
		}

		expanded, err := expandMacros(indexMap, entity)
		if err != nil {
			t.Fatalf("expandMacros failed: %v", err)
		}

		want := "ENTITY#" + bbid
		if expanded["PK"] != want || expanded["SK"] != want {
			t.Errorf("unexpected expansion: %v", expanded)
		}
	})

	t.Run("MissingFieldExpandsEmpty", func(t *testing.T) {
		indexMap := map[string]string{"PK": "ENTITY#{Nope}"}
		expanded, err := expandMacros(indexMap, models.Entity{BBID: bbid})
		if err != nil {
			t.Fatalf("expandMacros failed: %v", err)
		}
		if expanded["PK"] != "ENTITY#" {
			t.Errorf("expected empty macro expansion, got %q", expanded["PK"])
		}
	})

	t.Run("NumericField", func(t *testing.T) {
		indexMap := map[string]string{"PK": "REV#{Revision}"}
		expanded, err := expandMacros(indexMap, models.Entity{BBID: bbid, Revision: 7})
		if err != nil {
			t.Fatalf("expandMacros failed: %v", err)
		}
		if expanded["PK"] != "REV#7" {
			t.Errorf("expected REV#7, got %q", expanded["PK"])
		}
	})
}

func TestExpandStringKey(t *testing.T) {
	indexMap := map[string]string{
		"PK": "EDITOR#{ID}",
		"SK": "EDITOR#{ID}",
	}

	expanded := expandStringKey(indexMap, "alice")
	if expanded["PK"] != "EDITOR#alice" || expanded["SK"] != "EDITOR#alice" {
		t.Errorf("unexpected expansion: %v", expanded)
	}
}

func TestBuildKeyFromExpanded(t *testing.T) {
	t.Run("ValidKey", func(t *testing.T) {
		key, err := buildKeyFromExpanded(map[string]string{"PK": "A", "SK": "B"})
		if err != nil {
			t.Fatalf("buildKeyFromExpanded failed: %v", err)
		}
		pk := key["PK"].(*types.AttributeValueMemberS)
		sk := key["SK"].(*types.AttributeValueMemberS)
		if pk.Value != "A" || sk.Value != "B" {
			t.Errorf("unexpected key: %v", key)
		}
	})

	t.Run("MissingSK", func(t *testing.T) {
		if _, err := buildKeyFromExpanded(map[string]string{"PK": "A"}); err == nil {
			t.Error("expected error for missing SK")
		}
	})

	t.Run("EmptyPK", func(t *testing.T) {
		if _, err := buildKeyFromExpanded(map[string]string{"PK": "", "SK": "B"}); err == nil {
			t.Error("expected error for empty PK")
		}
	})
}

func TestBuildUpdateExpression(t *testing.T) {
	t.Run("SetClauses", func(t *testing.T) {
		expr, names, values, err := buildUpdateExpression(map[string]interface{}{
			"TotalRevisions": 3,
			"Name":           "alice",
		})
		if err != nil {
			t.Fatalf("buildUpdateExpression failed: %v", err)
		}

		if !strings.HasPrefix(expr, "SET ") {
			t.Errorf("expression should start with SET: %q", expr)
		}
		if len(names) != 2 || len(values) != 2 {
			t.Errorf("expected 2 names and values, got %d and %d", len(names), len(values))
		}

		fields := make(map[string]bool)
		for _, f := range names {
			fields[f] = true
		}
		if !fields["TotalRevisions"] || !fields["Name"] {
			t.Errorf("unexpected attribute names: %v", names)
		}
	})

	t.Run("EmptyUpdates", func(t *testing.T) {
		if _, _, _, err := buildUpdateExpression(nil); err == nil {
			t.Error("expected error for empty updates")
		}
	})
}

func TestIsRetryableError(t *testing.T) {
	if !isRetryableError(&types.ProvisionedThroughputExceededException{}) {
		t.Error("throughput exceeded should be retryable")
	}
	if !isRetryableError(&types.InternalServerError{}) {
		t.Error("internal server error should be retryable")
	}
	if isRetryableError(&types.ConditionalCheckFailedException{}) {
		t.Error("conditional check failure must not be retried")
	}
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package display

import (
	"fmt"
	"strings"

	"github.com/suparena/entityresolve/models"
)

// TitleFormat renders a page title from an entity's display name. It is
// supplied by the caller so titles go through the caller's localization
// machinery rather than plain concatenation here.
type TitleFormat func(name string) string

// EntityLink returns the canonical relative link for an entity:
// "/<lowercased type>/<bbid>". Type and BBID are assumed populated and
// valid; untrusted BBIDs must pass bbid.IsValid before reaching this
// point.
func EntityLink(entity *models.Entity) string {
	return fmt.Sprintf("/%s/%s", strings.ToLower(string(entity.Type)), entity.BBID)
}

// PageTitle returns fallback when the entity is absent or has no
// populated display name, and the formatted alias name otherwise.
func PageTitle(entity *models.Entity, fallback string, format TitleFormat) string {
	name := entity.AliasName()
	if name == "" {
		return fallback
	}
	return format(name)
}

// EntityTitle is the common page-title case: "<Section> <name>" with a
// "<Section> unnamed <kind>" fallback, e.g. EntityTitle(e, "Edit") on a
// nameless Work yields "Edit unnamed work". A nil entity falls back to
// "<Section> unnamed entity".
func EntityTitle(entity *models.Entity, section string) string {
	kind := "entity"
	if entity != nil {
		kind = strings.ToLower(string(entity.Type))
	}
	fallback := fmt.Sprintf("%s unnamed %s", section, kind)
	return PageTitle(entity, fallback, func(name string) string {
		return fmt.Sprintf("%s %s", section, name)
	})
}

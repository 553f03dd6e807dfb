package specification

import "gorm.io/gorm"

// Specification is a composable query fragment. Repositories fold a list of
// them over the base query, so callers combine filters without the
// repository interface growing a method per combination.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActiveOnly keeps rows whose active flag is set. Deactivated records stay
// in the table so they can be reactivated later.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

type BySku struct {
	Sku string
}

func (s BySku) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sku = ?", s.Sku)
}

// RootsOnly keeps categories with no parent.
type RootsOnly struct{}

func (s RootsOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id IS NULL")
}

type ByParentId struct {
	ParentId uuid.UUID
}

func (s ByParentId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id = ?", s.ParentId)
}

type FeaturedOnly struct{}

func (s FeaturedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("featured = ?", true)
}

// ByCategoryName matches a product's scalar primary-category column.
type ByCategoryName struct {
	Name string
}

func (s ByCategoryName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Name)
}

type PublishedOnly struct{}

func (s PublishedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("published = ?", true)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ProductKeyword does a case-insensitive substring match across the product
// text columns. The keyword is also matched with '-' and '_' stripped so
// "nsrtw" finds "NSRT_mk4"-style SKUs.
type ProductKeyword struct {
	Keyword string
}

func (s ProductKeyword) Apply(db *gorm.DB) *gorm.DB {
	kw := "%" + s.Keyword + "%"
	cond := db.Session(&gorm.Session{NewDB: true}).
		Where("title_en ILIKE ?", kw).
		Or("title_th ILIKE ?", kw).
		Or("description_en ILIKE ?", kw).
		Or("description_th ILIKE ?", kw).
		Or("sku ILIKE ?", kw).
		Or("supplier ILIKE ?", kw).
		Or("category ILIKE ?", kw)

	stripped := strings.NewReplacer("-", "", "_", "").Replace(s.Keyword)
	if stripped != s.Keyword {
		skw := "%" + stripped + "%"
		cond = cond.
			Or("REPLACE(REPLACE(title_en, '-', ''), '_', '') ILIKE ?", skw).
			Or("REPLACE(REPLACE(sku, '-', ''), '_', '') ILIKE ?", skw)
	}

	return db.Where(cond)
}

// internal/entity/category_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id            uuid.UUID
	NameEn        string
	NameTh        string
	Slug          string
	DescriptionEn string
	DescriptionTh string
	Active        bool
	Order         int
	ProductCount  int
	ParentId      *uuid.UUID
	Children      []*Category
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

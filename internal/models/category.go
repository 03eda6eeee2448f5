package models

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryVeggie  Category = "VEGGIE"
	CategorySpecial Category = "SPECIAL"
	CategoryNormal  Category = "NORMAL"
)

// DefaultCategoryOrder fills scarce categories first, while the pool is least
// depleted. Reordering changes plan composition.
var DefaultCategoryOrder = []Category{CategoryVeggie, CategorySpecial, CategoryNormal}

func (c Category) String() string {
	return string(c)
}

func (c Category) Valid() bool {
	switch c {
	case CategoryVeggie, CategorySpecial, CategoryNormal:
		return true
	}
	return false
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}

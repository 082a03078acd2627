// Package entity defines the domain entities for the products feature.
package entity

import "time"

// Product is an inventory item owned by a person.
// The (Name, Owner) pair is unique.
type Product struct {
	ID       uint
	Name     string
	Owner    string
	Category string
	Count    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductInput is a raw submission. Count stays textual until it has been validated.
type ProductInput struct {
	Name     string
	Owner    string
	Category string
	Count    string
}

// Values returns the input as a field → value map for rule evaluation.
func (in ProductInput) Values() map[string]string {
	return map[string]string{
		"name":     in.Name,
		"owner":    in.Owner,
		"category": in.Category,
		"count":    in.Count,
	}
}

// ProductFilter narrows a listing. Zero values mean "no constraint".
type ProductFilter struct {
	// Name and Owner match as case-insensitive substrings.
	Name     string
	Owner    string
	Category string
	Page     int
	Size     int
}

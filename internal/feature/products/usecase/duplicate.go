package usecase

import "admin_backend/internal/feature/products/domain/entity"

// DuplicateNameOwnerMessage is reported when another product has the same name and owner.
const DuplicateNameOwnerMessage = "A product with the same name and owner already exists"

// FindProductConflict reports whether a product other than excludeID already has
// candidate's exact (Name, Owner) pair. Comparison is case-sensitive.
// Pass 0 as excludeID when creating.
func FindProductConflict(candidate entity.Product, existing []entity.Product, excludeID uint) bool {
	for _, p := range existing {
		if excludeID != 0 && p.ID == excludeID {
			continue
		}
		if p.Name == candidate.Name && p.Owner == candidate.Owner {
			return true
		}
	}
	return false
}

package persistence

import (
	"github.com/felixbrock/handymatch/internal/domain"
)

// CatalogRepo serves the fixed catalog. Until the pros API exists the records
// are the hardcoded mock data from the domain package.
type CatalogRepo struct{}

func (r CatalogRepo) Categories() []domain.CategoryInfo {
	return domain.Categories()
}

func (r CatalogRepo) Featured() []domain.Pro {
	return domain.FeaturedPros()
}

func (r CatalogRepo) Steps() []domain.Step {
	return domain.Steps()
}

// FindPro looks a featured pro up by display name.
func (r CatalogRepo) FindPro(name string) (*domain.Pro, bool) {
	for _, p := range domain.FeaturedPros() {
		if p.Name == name {
			return &p, true
		}
	}
	return nil, false
}

package catalog

import (
	"context"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// Catalog in-memory справочник пакетов. Данные неизменяемы после загрузки,
// поэтому читается без блокировок.
type Catalog struct {
	packages map[string]*domain.Package
	order    []string // стабильный порядок перечисления
}

// New создает справочник из seed-данных
func New(seed *Seed) *Catalog {
	c := &Catalog{
		packages: make(map[string]*domain.Package, len(seed.Packages)),
	}
	for i := range seed.Packages {
		pkg := seed.Packages[i].toDomain()
		c.packages[pkg.ID] = pkg
		c.order = append(c.order, pkg.ID)
	}
	return c
}

// NewFromFile создает справочник из TOML-файла
func NewFromFile(path string) (*Catalog, *PromoTable, error) {
	seed, err := LoadSeed(path)
	if err != nil {
		return nil, nil, err
	}
	return New(seed), NewPromoTable(seed), nil
}

// GetPackage возвращает пакет по ID
func (c *Catalog) GetPackage(_ context.Context, id string) (*domain.Package, error) {
	pkg, ok := c.packages[id]
	if !ok {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

// ListPackages возвращает все пакеты в порядке загрузки
func (c *Catalog) ListPackages(_ context.Context) []*domain.Package {
	result := make([]*domain.Package, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.packages[id])
	}
	return result
}

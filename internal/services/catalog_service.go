package services

import (
	"stylebay/internal/domain"
	"stylebay/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) AddProduct(name, image, category string, newPrice, oldPrice float64) (domain.Product, error) {
	p := domain.Product{
		Name:     name,
		Image:    image,
		Category: category,
		NewPrice: newPrice,
		OldPrice: oldPrice,
	}
	if err := s.Prods.Insert(&p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// RemoveProduct deletes by id. A miss is not an error; the storefront
// cannot tell deleted-nothing from deleted-one.
func (s *CatalogService) RemoveProduct(id int64) error {
	_, err := s.Prods.DeleteByID(id)
	return err
}

func (s *CatalogService) All() ([]domain.Product, error) {
	return s.Prods.All()
}

// NewCollections returns everything after the first product, then the last
// 8 of that tail. The double cut looks odd but it is what the storefront
// was built against, so it stays.
func (s *CatalogService) NewCollections() ([]domain.Product, error) {
	products, err := s.Prods.All()
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		products = products[1:]
	}
	if len(products) > 8 {
		products = products[len(products)-8:]
	}
	return products, nil
}

// PopularInWomen is the first four catalog entries in the women category,
// in insertion order.
func (s *CatalogService) PopularInWomen() ([]domain.Product, error) {
	return s.Prods.ByCategory("women", 4)
}

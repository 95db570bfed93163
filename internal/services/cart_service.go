package services

import (
	"stylebay/internal/domain"
	"stylebay/internal/repos"
)

type CartService struct {
	Users *repos.UserRepo
}

func NewCartService(users *repos.UserRepo) *CartService {
	return &CartService{Users: users}
}

func (s *CartService) load(userID string) (*domain.User, domain.Cart, error) {
	u, err := s.Users.ByID(userID)
	if err != nil {
		return nil, nil, err
	}
	cart, err := u.Cart()
	if err != nil {
		return nil, nil, err
	}
	return u, cart, nil
}

func (s *CartService) save(userID string, cart domain.Cart) error {
	enc, err := cart.Encode()
	if err != nil {
		return err
	}
	return s.Users.SaveCart(userID, enc)
}

// Add increments the quantity for the item. There is no upper bound.
func (s *CartService) Add(userID, itemID string) error {
	_, cart, err := s.load(userID)
	if err != nil {
		return err
	}
	cart.Add(itemID)
	return s.save(userID, cart)
}

// Remove decrements the quantity if it is positive; removing from an
// empty slot leaves the cart untouched.
func (s *CartService) Remove(userID, itemID string) error {
	_, cart, err := s.load(userID)
	if err != nil {
		return err
	}
	if !cart.Remove(itemID) {
		return nil
	}
	return s.save(userID, cart)
}

func (s *CartService) Get(userID string) (domain.Cart, error) {
	_, cart, err := s.load(userID)
	return cart, err
}

package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"stylebay/internal/domain"

	"github.com/jmoiron/sqlx"
)

var (
	ErrEmailTaken   = errors.New("email already in use")
	ErrUserNotFound = errors.New("user not found")
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) Insert(u *domain.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users(id,name,email,password_hash,cart_json)
		VALUES(?,?,?,?,?)
	`, u.ID, u.Name, u.Email, u.Hash, u.CartJSON)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT id,name,email,password_hash,cart_json,created_at
	  FROM users WHERE LOWER(email)=LOWER(?)
	`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT id,name,email,password_hash,cart_json,created_at
	  FROM users WHERE id=?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user by id: %w", err)
	}
	return &u, nil
}

// SaveCart writes back the whole cart document for the user.
func (r *UserRepo) SaveCart(userID, cartJSON string) error {
	_, err := r.DB.Exec(`UPDATE users SET cart_json=? WHERE id=?`, cartJSON, userID)
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

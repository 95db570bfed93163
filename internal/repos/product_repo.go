package repos

import (
	"fmt"
	"strings"

	"stylebay/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Insert assigns the next catalog id (max existing + 1, 1 when empty) and
// persists the product. The unique index on id closes the read-then-write
// race: a concurrent add that mints the same id fails the insert and the
// assignment is retried.
func (r *ProductRepo) Insert(p *domain.Product) error {
	const attempts = 5
	for i := 0; i < attempts; i++ {
		var next int64
		if err := r.db.Get(&next, `SELECT COALESCE(MAX(id),0)+1 FROM products`); err != nil {
			return fmt.Errorf("next product id: %w", err)
		}
		_, err := r.db.Exec(`
			INSERT INTO products(id,name,image,category,new_price,old_price,available)
			VALUES(?,?,?,?,?,?,1)
		`, next, p.Name, p.Image, p.Category, p.NewPrice, p.OldPrice)
		if err == nil {
			p.ID = next
			p.Available = true
			return nil
		}
		if isUniqueViolation(err) {
			continue
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return fmt.Errorf("insert product: id conflict after %d attempts", attempts)
}

// DeleteByID removes the product with the given id and reports whether a
// row matched. Callers treat a miss as success; deletion is idempotent.
func (r *ProductRepo) DeleteByID(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductRepo) All() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id,name,image,category,new_price,old_price,created_at,available
	  FROM products
	  ORDER BY rowid
	`)
	return out, err
}

func (r *ProductRepo) ByCategory(category string, limit int) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id,name,image,category,new_price,old_price,created_at,available
	  FROM products
	  WHERE category = ?
	  ORDER BY rowid
	  LIMIT ?
	`, category, limit)
	return out, err
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

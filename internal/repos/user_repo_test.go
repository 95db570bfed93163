package repos_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"stylebay/internal/domain"
	"stylebay/internal/repos"
)

func newUser(id, email string) *domain.User {
	return &domain.User{ID: id, Name: "Test User", Email: email, Hash: "$2a$12$fake", CartJSON: "{}"}
}

func TestInsertAndLookup(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))
	if err := r.Insert(newUser("u1", "alice@stylebay.test")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	u, err := r.ByEmail("ALICE@stylebay.test") // lookup is case-insensitive
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if u.ID != "u1" {
		t.Fatalf("want u1, got %s", u.ID)
	}

	u, err = r.ByID("u1")
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if u.Email != "alice@stylebay.test" {
		t.Fatalf("unexpected email %s", u.Email)
	}
}

func TestDuplicateEmailHitsConstraint(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))
	if err := r.Insert(newUser("u1", "alice@stylebay.test")); err != nil {
		t.Fatal(err)
	}
	// Same address, different case: the LOWER(email) index still fires.
	err := r.Insert(newUser("u2", "Alice@stylebay.test"))
	if !errors.Is(err, repos.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestLookupMiss(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))
	if _, err := r.ByEmail("ghost@stylebay.test"); !errors.Is(err, repos.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
	if _, err := r.ByID("ghost"); !errors.Is(err, repos.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}

func TestSaveCartRoundTrip(t *testing.T) {
	r := repos.NewUserRepo(memdb(t))
	if err := r.Insert(newUser("u1", "alice@stylebay.test")); err != nil {
		t.Fatal(err)
	}
	if err := r.SaveCart("u1", `{"12":3}`); err != nil {
		t.Fatalf("save cart: %v", err)
	}
	u, err := r.ByID("u1")
	if err != nil {
		t.Fatal(err)
	}
	cart, err := u.Cart()
	if err != nil {
		t.Fatal(err)
	}
	if cart.Qty("12") != 3 {
		t.Fatalf("want qty 3 for item 12, got %d", cart.Qty("12"))
	}
}

func TestSaveCartPropagatesStoreError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer mockDB.Close()
	r := repos.NewUserRepo(sqlx.NewDb(mockDB, "sqlite"))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET cart_json=? WHERE id=?`)).
		WithArgs("{}", "u1").
		WillReturnError(errors.New("disk I/O error"))

	if err := r.SaveCart("u1", "{}"); err == nil {
		t.Fatal("expected store error to surface")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

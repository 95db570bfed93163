package handlers

import (
	"stylebay/internal/config"
	"stylebay/internal/repos"
	"stylebay/internal/services"
	"stylebay/internal/token"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler *ProductHandler
	AuthHandler    *AuthHandler
	CartHandler    *CartHandler
	UploadHandler  *UploadHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, tokens *token.Issuer) *Deps {
	prodRepo := repos.NewProductRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	authSvc := &services.AuthService{Users: userRepo, Tokens: tokens}
	cartSvc := services.NewCartService(userRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		AuthHandler:    &AuthHandler{Auth: authSvc},
		CartHandler:    &CartHandler{Cart: cartSvc},
		UploadHandler:  &UploadHandler{Dir: cfg.UploadDir, BaseURL: cfg.PublicBaseURL},
	}
}

package di

import (
	"time"

	"gorm.io/gorm"

	authadapters "garden_backend/internal/feature/auth/adapters"
	authhandler "garden_backend/internal/feature/auth/transport/handler"
	authusecase "garden_backend/internal/feature/auth/usecase"
	jwtmw "garden_backend/internal/platform/jwt"
)

// NewAuthHandler wires the user repository, token generator and auth usecase.
func NewAuthHandler(db *gorm.DB, secret string, expiration time.Duration) *authhandler.AuthHandler {
	users := authadapters.NewUserRepository(db)
	tokens := jwtmw.NewGenerator(secret, expiration)
	return authhandler.NewAuthHandler(authusecase.NewAuthUsecase(users, tokens))
}

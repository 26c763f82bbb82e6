package repository

import "github.com/JuanCami009/banco-sangre-api/internal/domain/entity"

// UserPatch campos parciales para actualizar un usuario.
type UserPatch struct {
	Email        *string
	PasswordHash *string
	RoleID       *string
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(id string, patch UserPatch) (int64, error)
	Delete(id string) (int64, error)
}

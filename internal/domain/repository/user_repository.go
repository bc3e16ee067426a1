package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	// FindByEmail devuelve el usuario o (nil, nil) si no existe.
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}

package repository

import (
	"context"

	"marketplace-admin/internal/app/ds"
	"marketplace-admin/internal/app/role"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(ctx context.Context, id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, notFound(err, "user", id)
	}
	return &user, nil
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).Where("login = ?", login).First(&user).Error
	if err != nil {
		return nil, notFound(err, "user", 0)
	}
	return &user, nil
}

// CreateUser ожидает уже захешированный пароль
func (r *Repository) CreateUser(ctx context.Context, login, passwordHash, fullName string, userRole role.Role) (*ds.User, error) {
	user := ds.User{
		Login:    login,
		Password: passwordHash,
		FullName: fullName,
		Role:     int(userRole),
	}

	err := r.db.WithContext(ctx).Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

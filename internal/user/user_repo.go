package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Role string
}

// Repository is the account store. Errors come back already mapped to usererrors.
//
//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter ListFilter) ([]User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *repository) Create(ctx context.Context, u *User) error {
	u.Email = NormalizeEmail(u.Email)
	return mapRepositoryError(r.db.WithContext(ctx).Create(u).Error)
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, mapRepositoryError(gorm.ErrRecordNotFound)
	}
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", uid).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Where("email = ?", NormalizeEmail(email)).
		First(&u).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &u, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]User, error) {
	var users []User
	q := r.db.WithContext(ctx)
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if err := q.Order("name ASC").Find(&users).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return users, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return users, nil
}

func (r *repository) Update(ctx context.Context, u *User) error {
	u.Email = NormalizeEmail(u.Email)
	return mapRepositoryError(r.db.WithContext(ctx).Save(u).Error)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return mapRepositoryError(gorm.ErrRecordNotFound)
	}
	res := r.db.WithContext(ctx).Delete(&User{}, "id = ?", uid)
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return mapRepositoryError(gorm.ErrRecordNotFound)
	}
	return nil
}

package attendance

import (
	"context"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/shared/timeutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter narrows FindAll. Empty UserID and a zero Range match everything.
type ListFilter struct {
	UserID string
	Range  timeutil.Range
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindByUserAndDate(ctx context.Context, userID string, day time.Time) (*Attendance, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Attendance, error)
	CheckOut(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts the day's record. A second insert for the same (user, day)
// affects no rows and returns ErrAlreadyCheckedIn.
func (r *repository) Create(ctx context.Context, a *Attendance) error {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "work_date"}},
			DoNothing: true,
		}).
		Create(a)
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return attendanceerrors.ErrAlreadyCheckedIn
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return nil, attendanceerrors.ErrAttendanceNotFound
	}
	var a Attendance
	if err := r.db.WithContext(ctx).First(&a, "id = ?", aid).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return &a, nil
}

func (r *repository) FindByUserAndDate(ctx context.Context, userID string, day time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("work_date = ?", day.Format(timeutil.DateLayout)).
		First(&a).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &a, nil
}

func ownedBy(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == "" {
			return db
		}
		return db.Where("user_id = ?", userID)
	}
}

func workedBetween(rng timeutil.Range) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if rng.IsZero() {
			return db
		}
		return db.Where("work_date BETWEEN ? AND ?",
			rng.From.Format(timeutil.DateLayout),
			rng.To.Format(timeutil.DateLayout))
	}
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(ownedBy(filter.UserID), workedBetween(filter.Range)).
		Order("work_date DESC, check_in DESC").
		Find(&rows).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rows, nil
}

// CheckOut writes the check-out only while it is still unset; losing that
// race yields ErrAlreadyCheckedOut.
func (r *repository) CheckOut(ctx context.Context, a *Attendance) error {
	res := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("id = ? AND check_out IS NULL", a.ID).
		Updates(map[string]any{
			"check_out":     a.CheckOut,
			"total_seconds": a.TotalSeconds,
			"notes":         a.Notes,
		})
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return attendanceerrors.ErrAlreadyCheckedOut
	}
	return nil
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	res := r.db.WithContext(ctx).
		Model(a).
		Select("work_date", "check_in", "check_out", "total_seconds", "status", "project", "notes").
		Updates(a)
	if res.Error != nil {
		return mapUpdateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return attendanceerrors.ErrAttendanceNotFound
	}
	return nil
}

package attendance

import (
	"context"
	"regexp"
	"testing"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/shared/timeutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func newRecord() *Attendance {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	return &Attendance{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		WorkDate: timeutil.StartOfDay(now),
		CheckIn:  now,
		Status:   StatusPresent,
		Project:  DefaultProject,
	}
}

func TestRepository_Create(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)
	rec := newRecord()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "attendances"`) + `.*ON CONFLICT \("user_id","work_date"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(rec.ID))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ConflictAffectsNoRows(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "attendances"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), newRecord())
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "attendances"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_user_day"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), newRecord())
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
}

func TestRepository_FindByUserAndDate_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "attendances" WHERE user_id = $1 AND work_date = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUserAndDate(context.Background(), uuid.NewString(), time.Now())
	assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
}

func TestRepository_CheckOut(t *testing.T) {
	rec := newRecord()
	out := rec.CheckIn.Add(8 * time.Hour)
	rec.CheckOut = &out
	rec.recompute()

	t.Run("open record", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRepository(gdb)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "attendances" SET`) + `.*WHERE \(?id = \$\d+ AND check_out IS NULL\)?`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.CheckOut(context.Background(), rec))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already closed", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRepository(gdb)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "attendances" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.CheckOut(context.Background(), rec)
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
	})
}

func TestRepository_Update(t *testing.T) {
	rec := newRecord()

	t.Run("writes work date with the edited fields", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRepository(gdb)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "attendances" SET`) + `.*"work_date"=\$\d+.*"check_in"=\$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Update(context.Background(), rec))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("day already taken", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRepository(gdb)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "attendances" SET`)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_user_day"})
		mock.ExpectRollback()

		err := repo.Update(context.Background(), rec)
		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceDayTaken)
		assert.NotErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRepository(gdb)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "attendances" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Update(context.Background(), rec)
		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}

func TestRepository_FindAll_WithRange(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)
	userID := uuid.New()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "attendances" WHERE user_id = $1 AND (work_date BETWEEN $2 AND $3) ORDER BY work_date DESC, check_in DESC`)).
		WithArgs(userID.String(), "2024-03-01", "2024-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_seconds"}).AddRow(id, userID, 28800))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(userID, "Ann", "ann@example.com"))

	rows, err := repo.FindAll(context.Background(), ListFilter{
		UserID: userID.String(),
		Range:  timeutil.MonthRange(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)),
	})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(28800), rows[0].TotalSeconds)
	require.NotNil(t, rows[0].User)
	assert.Equal(t, "Ann", rows[0].User.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecompute(t *testing.T) {
	in := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	out := in.Add(time.Hour + 999*time.Millisecond)
	a := &Attendance{CheckIn: in, CheckOut: &out}

	a.recompute()
	assert.Equal(t, int64(3600), a.TotalSeconds)

	a.CheckOut = nil
	a.recompute()
	assert.Zero(t, a.TotalSeconds)
}

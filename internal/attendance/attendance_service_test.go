package attendance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-attendance/internal/attendance"
	attendanceerrors "go-attendance/internal/attendance/errors"
	attendanceMock "go-attendance/internal/attendance/mock"
	bootstrapMock "go-attendance/internal/bootstrap/mock"
	"go-attendance/internal/shared/timeutil"
	usererrors "go-attendance/internal/user/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func clockAt(t time.Time) timeutil.Clock {
	return func() time.Time { return t }
}

func TestService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := attendanceMock.NewMockRepository(ctrl)
	now := time.Date(2024, 3, 4, 9, 15, 0, 0, time.Local)
	svc := attendance.NewService(repo, attendance.WithClock(clockAt(now)))
	ctx := context.Background()
	userID := uuid.New()

	t.Run("first check-in of the day", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *attendance.Attendance) error {
			assert.Equal(t, userID, a.UserID)
			assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local), a.WorkDate)
			assert.Equal(t, now, a.CheckIn)
			assert.Nil(t, a.CheckOut)
			assert.Zero(t, a.TotalSeconds)
			return nil
		})

		resp, err := svc.CheckIn(ctx, userID.String(), attendance.CheckInRequest{})

		require.NoError(t, err)
		assert.Equal(t, "2024-03-04", resp.Date)
		assert.Equal(t, attendance.DefaultProject, resp.Project)
		assert.Equal(t, attendance.StatusPresent, resp.Status)
	})

	t.Run("project is kept", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := svc.CheckIn(ctx, userID.String(), attendance.CheckInRequest{Project: "Apollo"})

		require.NoError(t, err)
		assert.Equal(t, "Apollo", resp.Project)
	})

	t.Run("second check-in same day", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).Return(attendanceerrors.ErrAlreadyCheckedIn)

		_, err := svc.CheckIn(ctx, userID.String(), attendance.CheckInRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, err := svc.CheckIn(ctx, "nope", attendance.CheckInRequest{})

		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})
}

func TestService_CheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := attendanceMock.NewMockRepository(ctrl)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	checkIn := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	checkOutAt := time.Date(2024, 3, 4, 18, 30, 0, 900_000_000, time.Local)
	svc := attendance.NewService(repo, attendance.WithClock(clockAt(checkOutAt)))

	openRecord := func() *attendance.Attendance {
		return &attendance.Attendance{ID: uuid.New(), UserID: userID, WorkDate: day, CheckIn: checkIn, Project: "General"}
	}

	t.Run("success floors total seconds", func(t *testing.T) {
		repo.EXPECT().FindByUserAndDate(ctx, userID.String(), day).Return(openRecord(), nil)
		repo.EXPECT().CheckOut(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *attendance.Attendance) error {
			assert.Equal(t, int64(34200), a.TotalSeconds)
			assert.Equal(t, "done for today", a.Notes)
			return nil
		})

		resp, err := svc.CheckOut(ctx, userID.String(), attendance.CheckOutRequest{Notes: "done for today"})

		require.NoError(t, err)
		require.NotNil(t, resp.CheckOut)
		assert.Equal(t, checkOutAt, *resp.CheckOut)
		assert.Equal(t, int64(34200), resp.TotalTimeInSeconds)
	})

	t.Run("no check-in today", func(t *testing.T) {
		repo.EXPECT().FindByUserAndDate(ctx, userID.String(), day).Return(nil, attendanceerrors.ErrAttendanceNotFound)

		_, err := svc.CheckOut(ctx, userID.String(), attendance.CheckOutRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrNoCheckIn)
	})

	t.Run("already checked out", func(t *testing.T) {
		rec := openRecord()
		done := checkIn.Add(8 * time.Hour)
		rec.CheckOut = &done
		repo.EXPECT().FindByUserAndDate(ctx, userID.String(), day).Return(rec, nil)

		_, err := svc.CheckOut(ctx, userID.String(), attendance.CheckOutRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
	})

	t.Run("concurrent check-out loses the conditional update", func(t *testing.T) {
		repo.EXPECT().FindByUserAndDate(ctx, userID.String(), day).Return(openRecord(), nil)
		repo.EXPECT().CheckOut(ctx, gomock.Any()).Return(attendanceerrors.ErrAlreadyCheckedOut)

		_, err := svc.CheckOut(ctx, userID.String(), attendance.CheckOutRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
	})

	t.Run("store failure", func(t *testing.T) {
		boom := errors.New("connection reset")
		repo.EXPECT().FindByUserAndDate(ctx, userID.String(), day).Return(nil, boom)

		_, err := svc.CheckOut(ctx, userID.String(), attendance.CheckOutRequest{})

		assert.ErrorIs(t, err, boom)
	})
}

func TestService_CheckOut_AfterMidnight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := attendanceMock.NewMockRepository(ctrl)
	userID := uuid.New().String()
	afterMidnight := time.Date(2024, 3, 5, 0, 30, 0, 0, time.Local)
	svc := attendance.NewService(repo, attendance.WithClock(clockAt(afterMidnight)))

	// The open record belongs to the 4th; the lookup is for the 5th.
	repo.EXPECT().
		FindByUserAndDate(gomock.Any(), userID, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)).
		Return(nil, attendanceerrors.ErrAttendanceNotFound)

	_, err := svc.CheckOut(context.Background(), userID, attendance.CheckOutRequest{})

	assert.ErrorIs(t, err, attendanceerrors.ErrNoCheckIn)
}

func TestService_Today(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := attendanceMock.NewMockRepository(ctrl)
	now := time.Date(2024, 3, 4, 11, 0, 0, 0, time.Local)
	svc := attendance.NewService(repo, attendance.WithClock(clockAt(now)))
	userID := uuid.New()

	t.Run("none yet", func(t *testing.T) {
		repo.EXPECT().FindByUserAndDate(gomock.Any(), userID.String(), timeutil.StartOfDay(now)).
			Return(nil, attendanceerrors.ErrAttendanceNotFound)

		resp, err := svc.Today(context.Background(), userID.String())

		require.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("checked in", func(t *testing.T) {
		repo.EXPECT().FindByUserAndDate(gomock.Any(), userID.String(), timeutil.StartOfDay(now)).
			Return(&attendance.Attendance{ID: uuid.New(), UserID: userID, WorkDate: timeutil.StartOfDay(now), CheckIn: now}, nil)

		resp, err := svc.Today(context.Background(), userID.String())

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Nil(t, resp.CheckOut)
	})
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := attendanceMock.NewMockRepository(ctrl)
	svc := attendance.NewService(repo)
	uid := uuid.New()
	rng := timeutil.Range{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local),
	}

	t.Run("admin list carries user summary", func(t *testing.T) {
		filter := attendance.ListFilter{UserID: uid.String(), Range: rng}
		repo.EXPECT().FindAll(gomock.Any(), filter).Return([]attendance.Attendance{
			{ID: uuid.New(), UserID: uid, User: &attendance.UserRef{ID: uid, Name: "Ann", Email: "ann@example.com"}},
		}, nil)

		resp, err := svc.List(context.Background(), filter)

		require.NoError(t, err)
		require.Len(t, resp, 1)
		require.NotNil(t, resp[0].User)
		assert.Equal(t, "Ann", resp[0].User.Name)
	})

	t.Run("own list omits user summary", func(t *testing.T) {
		repo.EXPECT().FindAll(gomock.Any(), attendance.ListFilter{UserID: uid.String(), Range: rng}).
			Return([]attendance.Attendance{{ID: uuid.New(), UserID: uid, User: &attendance.UserRef{ID: uid}}}, nil)

		resp, err := svc.ListMine(context.Background(), uid.String(), rng)

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Nil(t, resp[0].User)
	})

	t.Run("bad user filter", func(t *testing.T) {
		_, err := svc.List(context.Background(), attendance.ListFilter{UserID: "x"})

		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := attendanceMock.NewMockRepository(ctrl)
	audit := bootstrapMock.NewMockAuditLogger(ctrl)
	svc := attendance.NewService(repo, attendance.WithAuditLogger(audit))
	ctx := context.Background()

	id := uuid.New()
	checkIn := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	record := func() *attendance.Attendance {
		return &attendance.Attendance{ID: id, UserID: uuid.New(), CheckIn: checkIn, Status: attendance.StatusPresent}
	}

	t.Run("setting check-out recomputes total", func(t *testing.T) {
		out := checkIn.Add(7*time.Hour + 30*time.Minute)
		half := attendance.StatusHalfDay
		repo.EXPECT().FindByID(ctx, id.String()).Return(record(), nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		audit.EXPECT().Log(ctx, gomock.Any())

		resp, err := svc.Update(ctx, id.String(), attendance.UpdateRequest{CheckOut: &out, Status: &half})

		require.NoError(t, err)
		assert.Equal(t, int64(27000), resp.TotalTimeInSeconds)
		assert.Equal(t, attendance.StatusHalfDay, resp.Status)
	})

	t.Run("moving check-in to another day re-keys the work date", func(t *testing.T) {
		in := time.Date(2024, 3, 5, 8, 30, 0, 0, time.Local)
		out := in.Add(8 * time.Hour)
		var saved *attendance.Attendance
		repo.EXPECT().FindByID(ctx, id.String()).Return(record(), nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *attendance.Attendance) error {
			saved = a
			return nil
		})
		audit.EXPECT().Log(ctx, gomock.Any())

		resp, err := svc.Update(ctx, id.String(), attendance.UpdateRequest{CheckIn: &in, CheckOut: &out})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), saved.WorkDate)
		assert.Equal(t, "2024-03-05", resp.Date)
		assert.Equal(t, int64(28800), resp.TotalTimeInSeconds)
	})

	t.Run("moving check-in onto an occupied day conflicts", func(t *testing.T) {
		in := time.Date(2024, 3, 5, 8, 30, 0, 0, time.Local)
		repo.EXPECT().FindByID(ctx, id.String()).Return(record(), nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(attendanceerrors.ErrAttendanceDayTaken)

		_, err := svc.Update(ctx, id.String(), attendance.UpdateRequest{CheckIn: &in})

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceDayTaken)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		out := checkIn.Add(-time.Minute)
		repo.EXPECT().FindByID(ctx, id.String()).Return(record(), nil)

		_, err := svc.Update(ctx, id.String(), attendance.UpdateRequest{CheckOut: &out})

		assert.ErrorIs(t, err, attendanceerrors.ErrCheckOutBeforeCheckIn)
	})

	t.Run("unknown status", func(t *testing.T) {
		bad := "late"
		repo.EXPECT().FindByID(ctx, id.String()).Return(record(), nil)

		_, err := svc.Update(ctx, id.String(), attendance.UpdateRequest{Status: &bad})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id.String()).Return(nil, attendanceerrors.ErrAttendanceNotFound)

		_, err := svc.Update(ctx, id.String(), attendance.UpdateRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}

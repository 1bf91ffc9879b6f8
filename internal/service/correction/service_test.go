package correction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klinikmedika/absensi-backend-go/internal/domain/attendance"
	"github.com/klinikmedika/absensi-backend-go/internal/domain/correction"
)

type fakeCorrectionRepo struct {
	requests map[string]correction.CorrectionRequest
	nextID   int
}

func newFakeCorrectionRepo() *fakeCorrectionRepo {
	return &fakeCorrectionRepo{requests: map[string]correction.CorrectionRequest{}}
}

func (f *fakeCorrectionRepo) Create(_ context.Context, req correction.CorrectionRequest) (correction.CorrectionRequest, error) {
	f.nextID++
	req.ID = time.Now().Format("20060102") + "-" + string(rune('a'+f.nextID))
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeCorrectionRepo) GetByID(_ context.Context, id string) (correction.CorrectionRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return correction.CorrectionRequest{}, correction.ErrCorrectionNotFound
	}
	return req, nil
}

func (f *fakeCorrectionRepo) List(_ context.Context, _ correction.CorrectionFilter) ([]correction.CorrectionRequest, int64, error) {
	var out []correction.CorrectionRequest
	for _, req := range f.requests {
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCorrectionRepo) Update(_ context.Context, req correction.CorrectionRequest) error {
	if _, ok := f.requests[req.ID]; !ok {
		return correction.ErrCorrectionNotFound
	}
	f.requests[req.ID] = req
	return nil
}

func (f *fakeCorrectionRepo) CountByStatus(_ context.Context, status correction.Status) (int64, error) {
	var n int64
	for _, req := range f.requests {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func attKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = attKey(att.EmployeeID, att.Date)
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	att, ok := f.records[attKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &att, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	f.records[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListAbsentEmployeeIDs(_ context.Context, _ time.Time) ([]string, error) {
	return nil, nil
}

// fakeApplier stands in for the attendance service. It applies patches
// directly against the fake repo so the create-vs-patch decision is visible,
// and can be told to fail.
type fakeApplier struct {
	repo    *fakeAttendanceRepo
	failErr error
	calls   []attendance.ApplyTimesRequest
}

func (f *fakeApplier) ApplyTimes(ctx context.Context, req attendance.ApplyTimesRequest) (attendance.AttendanceResponse, error) {
	f.calls = append(f.calls, req)
	if f.failErr != nil {
		return attendance.AttendanceResponse{}, f.failErr
	}

	existing, _ := f.repo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if existing == nil {
		att := attendance.Attendance{
			EmployeeID:    req.EmployeeID,
			Date:          req.Date,
			CheckInClock:  req.TimeIn,
			CheckOutClock: req.TimeOut,
		}
		created, _ := f.repo.Create(ctx, att)
		return attendance.ToAttendanceResponse(created), nil
	}
	if req.TimeIn != nil {
		existing.CheckInClock = req.TimeIn
	}
	if req.TimeOut != nil {
		existing.CheckOutClock = req.TimeOut
	}
	_ = f.repo.Update(ctx, *existing)
	return attendance.ToAttendanceResponse(*existing), nil
}

func (f *fakeApplier) CheckIn(context.Context, attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	panic("not used")
}
func (f *fakeApplier) CheckOut(context.Context, attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	panic("not used")
}
func (f *fakeApplier) GetAttendance(context.Context, string) (attendance.AttendanceResponse, error) {
	panic("not used")
}
func (f *fakeApplier) ListAttendance(context.Context, attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	panic("not used")
}
func (f *fakeApplier) DeleteAttendance(context.Context, string) error {
	panic("not used")
}

func newTestService() (correction.CorrectionService, *fakeCorrectionRepo, *fakeAttendanceRepo, *fakeApplier) {
	correctionRepo := newFakeCorrectionRepo()
	attendanceRepo := &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}
	applier := &fakeApplier{repo: attendanceRepo}
	svc := NewCorrectionService(correctionRepo, attendanceRepo, applier)
	return svc, correctionRepo, attendanceRepo, applier
}

func strPtr(s string) *string { return &s }

func submit(t *testing.T, svc correction.CorrectionService, req correction.CreateCorrectionRequest) correction.CorrectionResponse {
	t.Helper()
	resp, err := svc.CreateCorrection(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, string(correction.StatusSubmitted), resp.Status)
	return resp
}

func TestCreateCorrectionValidation(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  correction.CreateCorrectionRequest
	}{
		{
			name: "lupa absen without check-in time",
			req: correction.CreateCorrectionRequest{
				EmployeeID: "emp-1",
				Date:       "2026-08-01",
				Type:       "LUPA_ABSEN",
				Reason:     "forgot badge",
			},
		},
		{
			name: "koreksi jam without any time",
			req: correction.CreateCorrectionRequest{
				EmployeeID: "emp-1",
				Date:       "2026-08-01",
				Type:       "KOREKSI_JAM",
				Reason:     "device offline",
			},
		},
		{
			name: "lupa absen with subtype",
			req: correction.CreateCorrectionRequest{
				EmployeeID:      "emp-1",
				Date:            "2026-08-01",
				Type:            "LUPA_ABSEN",
				Subtype:         strPtr("CHECKIN"),
				RequestedTimeIn: strPtr("07:00"),
				Reason:          "forgot badge",
			},
		},
		{
			name: "malformed date",
			req: correction.CreateCorrectionRequest{
				EmployeeID:      "emp-1",
				Date:            "01-08-2026",
				Type:            "LUPA_ABSEN",
				RequestedTimeIn: strPtr("07:00"),
				Reason:          "forgot badge",
			},
		},
		{
			name: "unknown type",
			req: correction.CreateCorrectionRequest{
				EmployeeID:      "emp-1",
				Date:            "2026-08-01",
				Type:            "IZIN",
				RequestedTimeIn: strPtr("07:00"),
				Reason:          "whatever",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCorrection(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestApproveLupaAbsenCreatesRecordInOneCall(t *testing.T) {
	svc, _, attendanceRepo, applier := newTestService()
	ctx := context.Background()

	created := submit(t, svc, correction.CreateCorrectionRequest{
		EmployeeID:       "emp-1",
		Date:             "2026-08-03",
		Type:             "LUPA_ABSEN",
		RequestedTimeIn:  strPtr("07:05"),
		RequestedTimeOut: strPtr("16:00"),
		Reason:           "forgot to badge in",
	})

	resp, err := svc.ReviewCorrection(ctx, correction.ReviewCorrectionRequest{
		ID:         created.ID,
		ReviewerID: "admin-1",
		Action:     "APPROVE",
	})
	require.NoError(t, err)

	assert.Equal(t, string(correction.StatusApproved), resp.Status)
	require.NotNil(t, resp.PatchResult)
	assert.True(t, resp.PatchResult.Applied)

	// Both clock fields must land in a single apply.
	require.Len(t, applier.calls, 1)
	assert.Equal(t, "07:05", *applier.calls[0].TimeIn)
	assert.Equal(t, "16:00", *applier.calls[0].TimeOut)

	date, _ := time.Parse("2006-01-02", "2026-08-03")
	att, err := attendanceRepo.GetByEmployeeAndDate(ctx, "emp-1", date)
	require.NoError(t, err)
	require.NotNil(t, att)
	assert.Equal(t, "07:05", *att.CheckInClock)
	assert.Equal(t, "16:00", *att.CheckOutClock)
}

func TestApproveKoreksiJamCheckinPreservesCheckout(t *testing.T) {
	svc, _, attendanceRepo, applier := newTestService()
	ctx := context.Background()

	date, _ := time.Parse("2006-01-02", "2026-08-04")
	_, err := attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:    "emp-1",
		Date:          date,
		CheckInClock:  strPtr("09:30"),
		CheckOutClock: strPtr("16:10"),
	})
	require.NoError(t, err)

	created := submit(t, svc, correction.CreateCorrectionRequest{
		EmployeeID:      "emp-1",
		Date:            "2026-08-04",
		Type:            "KOREKSI_JAM",
		Subtype:         strPtr("CHECKIN"),
		RequestedTimeIn: strPtr("07:00"),
		Reason:          "clock drift",
	})

	resp, err := svc.ReviewCorrection(ctx, correction.ReviewCorrectionRequest{
		ID:         created.ID,
		ReviewerID: "admin-1",
		Action:     "APPROVE",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.PatchResult)
	assert.True(t, resp.PatchResult.Applied)

	// The patch sends only the corrected side.
	require.Len(t, applier.calls, 1)
	require.NotNil(t, applier.calls[0].TimeIn)
	assert.Nil(t, applier.calls[0].TimeOut)

	att, err := attendanceRepo.GetByEmployeeAndDate(ctx, "emp-1", date)
	require.NoError(t, err)
	assert.Equal(t, "07:00", *att.CheckInClock)
	assert.Equal(t, "16:10", *att.CheckOutClock)
}

func TestApproveKoreksiJamMissingRecordFallsBackForBoth(t *testing.T) {
	svc, _, attendanceRepo, _ := newTestService()
	ctx := context.Background()

	created := submit(t, svc, correction.CreateCorrectionRequest{
		EmployeeID:       "emp-2",
		Date:             "2026-08-05",
		Type:             "KOREKSI_JAM",
		RequestedTimeIn:  strPtr("07:10"),
		RequestedTimeOut: strPtr("15:30"),
		Reason:           "record lost",
	})

	resp, err := svc.ReviewCorrection(ctx, correction.ReviewCorrectionRequest{
		ID:         created.ID,
		ReviewerID: "admin-1",
		Action:     "APPROVE",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.PatchResult)
	assert.True(t, resp.PatchResult.Applied)

	date, _ := time.Parse("2006-01-02", "2026-08-05")
	att, err := attendanceRepo.GetByEmployeeAndDate(ctx, "emp-2", date)
	require.NoError(t, err)
	require.NotNil(t, att)
	assert.Equal(t, "07:10", *att.CheckInClock)
}

func TestApproveKoreksiJamMissingRecordSingleSideDoesNotApply(t *testing.T) {
	svc, repo, _, applier := newTestService()
	ctx := context.Background()

	created := submit(t, svc, correction.CreateCorrectionRequest{
		EmployeeID:       "emp-3",
		Date:             "2026-08-06",
		Type:             "KOREKSI_JAM",
		Subtype:          strPtr("CHECKOUT"),
		RequestedTimeOut: strPtr("16:45"),
		Reason:           "left late",
	})

	resp, err := svc.ReviewCorrection(ctx, correction.ReviewCorrectionRequest{
		ID:         created.ID,
		ReviewerID: "admin-1",
		Action:     "APPROVE",
	})
	require.NoError(t, err)

	// Approval stands even though nothing could be patched.
	assert.Equal(t, string(correction.StatusApproved), resp.Status)
	require.NotNil(t, resp.PatchResult)
	assert.False(t, resp.PatchResult.Applied)
	assert.NotEmpty(t, resp.PatchResult.Message)
	assert.Empty(t, applier.calls)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, correction.StatusApproved, stored.Status)
}

func TestApprovalSurvivesPatchFailure(t *testing.T) {
	svc, repo, _, applier := newTestService()
	ctx := context.Background()
	applier.failErr = errors.New("database unavailable")

	created := submit(t, svc, correction.CreateCorrectionRequest{
		EmployeeID:      "emp-1",
		Date:            "2026-08-07",
		Type:            "LUPA_ABSEN",
		RequestedTimeIn: strPtr("07:00"),
		Reason:          "forgot",
	})

	resp, err := svc.ReviewCorrection(ctx, correction.ReviewCorrectionRequest{
		ID:         created.ID,
		ReviewerID: "admin-1",
		Action:     "APPROVE",
	})
	require.NoError(t, err)

	assert.Equal(t, string(correction.StatusApproved), resp.Status)
	require.NotNil(t, resp.PatchResult)
	assert.False(t, resp.PatchResult.Applied)
	assert.Contains(t, resp.PatchResult.Message, "database unavailable")

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, correction.StatusApproved, stored.Status)
}

func TestStatusTransitionsAreOneWay(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	created := submit(t, svc, correction.CreateCorrectionRequest{
		EmployeeID:      "emp-1",
		Date:            "2026-08-08",
		Type:            "LUPA_ABSEN",
		RequestedTimeIn: strPtr("07:00"),
		Reason:          "forgot",
	})

	_, err := svc.ReviewCorrection(ctx, correction.ReviewCorrectionRequest{
		ID:         created.ID,
		ReviewerID: "admin-1",
		Action:     "REJECT",
	})
	require.NoError(t, err)

	_, err = svc.ReviewCorrection(ctx, correction.ReviewCorrectionRequest{
		ID:         created.ID,
		ReviewerID: "admin-1",
		Action:     "APPROVE",
	})
	assert.ErrorIs(t, err, correction.ErrAlreadyProcessed)

	_, err = svc.CancelCorrection(ctx, created.ID, "emp-1")
	assert.ErrorIs(t, err, correction.ErrAlreadyProcessed)
}

func TestCancelOnlyByOwner(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	created := submit(t, svc, correction.CreateCorrectionRequest{
		EmployeeID:      "emp-1",
		Date:            "2026-08-09",
		Type:            "LUPA_ABSEN",
		RequestedTimeIn: strPtr("07:00"),
		Reason:          "forgot",
	})

	_, err := svc.CancelCorrection(ctx, created.ID, "emp-2")
	assert.ErrorIs(t, err, correction.ErrNotRequestOwner)

	resp, err := svc.CancelCorrection(ctx, created.ID, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, string(correction.StatusCanceled), resp.Status)
}

func TestNeedsRevisionIsTerminalForReview(t *testing.T) {
	svc, _, _, applier := newTestService()
	ctx := context.Background()

	created := submit(t, svc, correction.CreateCorrectionRequest{
		EmployeeID:      "emp-1",
		Date:            "2026-08-10",
		Type:            "LUPA_ABSEN",
		RequestedTimeIn: strPtr("07:00"),
		Reason:          "forgot",
	})

	resp, err := svc.ReviewCorrection(ctx, correction.ReviewCorrectionRequest{
		ID:         created.ID,
		ReviewerID: "admin-1",
		Action:     "NEEDS_REVISION",
		Note:       strPtr("wrong date?"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(correction.StatusNeedsRevision), resp.Status)
	assert.Nil(t, resp.PatchResult)
	assert.Empty(t, applier.calls)

	_, err = svc.ReviewCorrection(ctx, correction.ReviewCorrectionRequest{
		ID:         created.ID,
		ReviewerID: "admin-1",
		Action:     "APPROVE",
	})
	assert.ErrorIs(t, err, correction.ErrAlreadyProcessed)
}

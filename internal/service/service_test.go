package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/chronoguard/internal/database"
	"github.com/akyairhashvil/chronoguard/internal/database/mocks"
	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/timesheet"
	"github.com/akyairhashvil/chronoguard/internal/util"
)

var (
	grace = models.User{ID: 1, Username: "grace", Name: "Grace Vale", Role: models.RoleManager}
	arun  = models.User{ID: 2, Username: "arun", Name: "Arun Mehta", Role: models.RoleEmployee}
	ines  = models.User{ID: 3, Username: "ines", Name: "Ines Duarte", Role: models.RoleEmployee}
)

func goodInput() timesheet.EntryInput {
	return timesheet.EntryInput{
		Date:         "2026-03-09",
		StartTime:    "09:00",
		EndTime:      "11:00",
		TaskName:     "PROJ-101: Login page",
		TaskCategory: "Development",
		Description:  "form layout",
	}
}

func TestSaveEntryInsertsDenormalizedNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().ListEntries(ctx).Return(nil, nil)
	repo.EXPECT().ListTasks(ctx).Return(nil, nil)
	repo.EXPECT().GetUser(ctx, arun.ID).Return(arun, nil)
	repo.EXPECT().AddEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.Entry) (int64, error) {
			if e.UserName != "Arun Mehta" || e.UserID != arun.ID {
				t.Fatalf("owner name not denormalized: %+v", e)
			}
			if e.DurationHours != 2 {
				t.Fatalf("duration not derived: %+v", e)
			}
			return 7, nil
		})

	id, err := New(repo).SaveEntry(ctx, arun, arun.ID, 0, goodInput(), false)
	if err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected new id 7, got %d", id)
	}
}

func TestSaveEntryRejectsOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	existing := []models.Entry{{
		ID: 4, UserID: arun.ID, Date: "2026-03-09",
		StartTime: "10:00", EndTime: "14:00", DurationHours: 4,
	}}
	repo.EXPECT().ListEntries(ctx).Return(existing, nil)
	repo.EXPECT().ListTasks(ctx).Return(nil, nil)

	_, err := New(repo).SaveEntry(ctx, arun, arun.ID, 0, goodInput(), false)
	if err == nil || !strings.Contains(err.Error(), "overlaps") {
		t.Fatalf("expected overlap rejection, got %v", err)
	}
}

func TestSaveEntryBudgetConfirmFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	tasks := []models.Task{{
		ID: "PROJ-101", Name: "PROJ-101: Login page",
		EstimatedHours: util.Ptr(10.0), Status: models.TaskStatusInProgress,
	}}
	logged := []models.Entry{{
		ID: 4, UserID: ines.ID, Date: "2026-03-05",
		StartTime: "09:00", EndTime: "18:00", DurationHours: 9,
		TaskName: "PROJ-101: Login page",
	}}
	repo.EXPECT().ListEntries(ctx).Return(logged, nil).Times(2)
	repo.EXPECT().ListTasks(ctx).Return(tasks, nil).Times(2)

	svc := New(repo)
	_, err := svc.SaveEntry(ctx, arun, arun.ID, 0, goodInput(), false)
	var confirm *ConfirmationRequired
	if !errors.As(err, &confirm) {
		t.Fatalf("expected ConfirmationRequired, got %v", err)
	}
	if confirm.Warning.WouldBeTotal != 11 || confirm.Warning.Limit != 10 {
		t.Fatalf("unexpected warning: %+v", confirm.Warning)
	}

	repo.EXPECT().GetUser(ctx, arun.ID).Return(arun, nil)
	repo.EXPECT().AddEntry(ctx, gomock.Any()).Return(int64(8), nil)
	if _, err := svc.SaveEntry(ctx, arun, arun.ID, 0, goodInput(), true); err != nil {
		t.Fatalf("confirmed save failed: %v", err)
	}
}

func TestSaveEntryForOtherUserNeedsManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	if _, err := New(repo).SaveEntry(ctx, arun, ines.ID, 0, goodInput(), false); !errors.Is(err, ErrPermission) {
		t.Fatalf("employee writing another user's entry must refuse, got %v", err)
	}
}

func TestSaveEntryEditKeepsManagerComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	current := models.Entry{
		ID: 5, UserID: arun.ID, UserName: "Arun Mehta", Date: "2026-03-09",
		StartTime: "08:00", EndTime: "09:00", DurationHours: 1,
		TaskName: "PROJ-101: Login page", TaskCategory: "Development",
		ManagerComment: "looks good",
	}
	repo.EXPECT().ListEntries(ctx).Return([]models.Entry{current}, nil)
	repo.EXPECT().ListTasks(ctx).Return(nil, nil)
	repo.EXPECT().GetUser(ctx, arun.ID).Return(arun, nil)
	repo.EXPECT().GetEntry(ctx, int64(5)).Return(current, nil)
	repo.EXPECT().UpdateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.Entry) error {
			if e.ManagerComment != "looks good" {
				t.Fatalf("edit dropped manager comment: %+v", e)
			}
			if e.StartTime != "09:00" || e.EndTime != "11:00" {
				t.Fatalf("edit did not apply new interval: %+v", e)
			}
			return nil
		})

	id, err := New(repo).SaveEntry(ctx, arun, arun.ID, 5, goodInput(), false)
	if err != nil || id != 5 {
		t.Fatalf("SaveEntry edit = (%d, %v)", id, err)
	}
}

func TestSaveEntryEditChecksStoredOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	theirs := models.Entry{
		ID: 5, UserID: ines.ID, UserName: "Ines Duarte", Date: "2026-03-09",
		StartTime: "09:00", EndTime: "11:00", DurationHours: 2,
	}
	repo.EXPECT().GetEntry(ctx, int64(5)).Return(theirs, nil)

	// arun passes his own id as the owner, but entry 5 belongs to ines.
	_, err := New(repo).SaveEntry(ctx, arun, arun.ID, 5, goodInput(), false)
	if !errors.Is(err, ErrPermission) {
		t.Fatalf("employee rewriting another user's entry must refuse, got %v", err)
	}
}

func TestVisibleEntriesScopesByRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().ListEntries(ctx).Return([]models.Entry{{ID: 1}, {ID: 2}}, nil)
	repo.EXPECT().QueryEntries(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, q *database.EntryQuery) ([]models.Entry, error) {
			query, args := q.Build()
			if !strings.Contains(query, "userId = ?") || args[0] != arun.ID {
				t.Fatalf("employee listing must filter by user: %q %v", query, args)
			}
			return []models.Entry{{ID: 1, UserID: arun.ID}}, nil
		})

	svc := New(repo)
	all, err := svc.VisibleEntries(ctx, grace)
	if err != nil || len(all) != 2 {
		t.Fatalf("manager view = (%v, %v)", all, err)
	}
	own, err := svc.VisibleEntries(ctx, arun)
	if err != nil || len(own) != 1 {
		t.Fatalf("employee view = (%v, %v)", own, err)
	}
}

func TestWeekHoursQueriesOneWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().QueryEntries(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, q *database.EntryQuery) ([]models.Entry, error) {
			query, args := q.Build()
			if !strings.Contains(query, "date >= ? AND date <= ?") {
				t.Fatalf("week total must query a date window: %q", query)
			}
			// 2026-03-11 is a Wednesday; its week runs Mon 09 to Sun 15.
			if args[1] != "2026-03-09" || args[2] != "2026-03-15" {
				t.Fatalf("wrong week window: %v", args)
			}
			return []models.Entry{
				{UserID: arun.ID, Date: "2026-03-09", DurationHours: 2},
				{UserID: arun.ID, Date: "2026-03-11", DurationHours: 1.5},
			}, nil
		})

	sum, err := New(repo).WeekHours(ctx, arun.ID, "2026-03-11")
	if err != nil || sum != 3.5 {
		t.Fatalf("WeekHours = (%v, %v)", sum, err)
	}
}

func TestStorePassthroughs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().ListEntries(ctx).Return([]models.Entry{{ID: 1}, {ID: 2}}, nil)
	repo.EXPECT().GetSetting(ctx, "theme").Return("dracula", true)
	repo.EXPECT().ExportSQL(ctx, database.ExportOptions{}).Return([]byte("-- backup"), nil)

	svc := New(repo)
	if all, err := svc.AllEntries(ctx); err != nil || len(all) != 2 {
		t.Fatalf("AllEntries = (%v, %v)", all, err)
	}
	if v, ok := svc.Setting(ctx, "theme"); !ok || v != "dracula" {
		t.Fatalf("Setting = (%q, %v)", v, ok)
	}
	if script, err := svc.ExportSQL(ctx, database.ExportOptions{}); err != nil || len(script) == 0 {
		t.Fatalf("ExportSQL = (%q, %v)", script, err)
	}
}

func TestDeleteEntryPermissions(t *testing.T) {
	entry := models.Entry{ID: 9, UserID: arun.ID}
	cases := []struct {
		name    string
		actor   models.User
		allowed bool
	}{
		{"owner", arun, true},
		{"manager", grace, true},
		{"other employee", ines, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mocks.NewMockRepository(ctrl)
			ctx := context.Background()

			repo.EXPECT().GetEntry(ctx, int64(9)).Return(entry, nil)
			if tc.allowed {
				repo.EXPECT().DeleteEntry(ctx, int64(9)).Return(nil)
			}
			err := New(repo).DeleteEntry(ctx, tc.actor, 9)
			if tc.allowed && err != nil {
				t.Fatalf("delete by %s failed: %v", tc.name, err)
			}
			if !tc.allowed && !errors.Is(err, ErrPermission) {
				t.Fatalf("delete by %s must refuse, got %v", tc.name, err)
			}
		})
	}
}

func TestCommentEntryManagerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	svc := New(repo)
	if err := svc.CommentEntry(ctx, arun, 9, "nope"); !errors.Is(err, ErrPermission) {
		t.Fatalf("employee comment must refuse, got %v", err)
	}
	repo.EXPECT().SetManagerComment(ctx, int64(9), "reviewed").Return(nil)
	if err := svc.CommentEntry(ctx, grace, 9, "reviewed"); err != nil {
		t.Fatalf("manager comment failed: %v", err)
	}
}

func TestCreateTaskDefaultsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().AddTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) error {
			if task.Status != models.TaskStatusToDo {
				t.Fatalf("missing status must default to todo, got %q", task.Status)
			}
			return nil
		})
	task := models.Task{ID: "OPS-7", Name: "OPS-7: Backups"}
	if err := New(repo).CreateTask(ctx, grace, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if err := New(repo).CreateTask(ctx, arun, task); !errors.Is(err, ErrPermission) {
		t.Fatalf("employee task creation must refuse, got %v", err)
	}
}

func TestCreateUserStoresPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	newUser := models.User{Username: "noor", Name: "Noor Haddad", Role: models.RoleEmployee}
	repo.EXPECT().AddUser(ctx, newUser).Return(int64(4), nil)
	repo.EXPECT().SetSetting(ctx, database.PasswordKey("noor"), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, hash string) error {
			if !util.CheckPassword(hash, "Secret123") {
				t.Fatalf("stored hash does not verify")
			}
			return nil
		})

	id, err := New(repo).CreateUser(ctx, grace, newUser, "Secret123")
	if err != nil || id != 4 {
		t.Fatalf("CreateUser = (%d, %v)", id, err)
	}
	if _, err := New(repo).CreateUser(ctx, grace, newUser, "weak"); err == nil {
		t.Fatalf("weak password must refuse")
	}
}

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	hash, err := util.HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	repo.EXPECT().GetUserByUsername(ctx, "arun").Return(arun, true, nil).Times(2)
	repo.EXPECT().GetSetting(ctx, database.PasswordKey("arun")).Return(hash, true).Times(2)
	repo.EXPECT().GetUserByUsername(ctx, "ghost").Return(models.User{}, false, nil)

	svc := New(repo)
	user, err := svc.Authenticate(ctx, "arun", "Secret123")
	if err != nil || user.ID != arun.ID {
		t.Fatalf("Authenticate = (%+v, %v)", user, err)
	}
	if _, err := svc.Authenticate(ctx, "arun", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("wrong password must refuse, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "ghost", "Secret123"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("unknown user must refuse, got %v", err)
	}
}

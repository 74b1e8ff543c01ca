package tui

import (
	"testing"

	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/service"
)

func TestTaskFormParses(t *testing.T) {
	m := NewTaskFormModel()
	m.fields[0].SetValue("PROJ-103")
	m.fields[1].SetValue("PROJ-103: Payments audit")
	m.fields[2].SetValue("12.5")
	m.fields[3].SetValue("2026-10-01")

	task, err := m.Task()
	if err != nil {
		t.Fatalf("Task failed: %v", err)
	}
	if task.ID != "PROJ-103" || task.Status != models.TaskStatusToDo {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.EstimatedHours == nil || *task.EstimatedHours != 12.5 {
		t.Fatalf("estimate not parsed: %+v", task)
	}

	m.fields[2].SetValue("-3")
	if _, err := m.Task(); err == nil {
		t.Fatalf("negative estimate must fail")
	}
	m.fields[2].SetValue("")
	m.fields[4].SetValue("paused")
	if _, err := m.Task(); err == nil {
		t.Fatalf("unknown status must fail")
	}
}

func TestUserFormDefaultsRole(t *testing.T) {
	m := NewUserFormModel()
	m.fields[0].SetValue("noor")
	m.fields[1].SetValue("Noor Haddad")
	m.fields[3].SetValue("Secret123")

	user, password, err := m.Account()
	if err != nil {
		t.Fatalf("Account failed: %v", err)
	}
	if user.Role != models.RoleEmployee || password != "Secret123" {
		t.Fatalf("unexpected account: %+v %q", user, password)
	}

	m.fields[2].SetValue("admin")
	if _, _, err := m.Account(); err == nil {
		t.Fatalf("unknown role must fail")
	}
}

func TestDashboardCreateTaskFlow(t *testing.T) {
	db, ctx := setupTUIDB(t)

	m := press(newDashboard(t, db, ctx, "grace"), "t")
	if m.mode != modeTaskForm {
		t.Fatalf("manager must open the task form")
	}
	task := models.Task{ID: "PROJ-103", Name: "PROJ-103: Payments audit"}
	m, _ = m.Update(taskSubmitMsg{task: task})
	if m.mode != modeBrowse {
		t.Fatalf("task creation did not complete: %q", m.taskForm.message)
	}
	tasks, err := service.New(db).Tasks(ctx)
	if err != nil || len(tasks) != 4 {
		t.Fatalf("expected 4 tasks after create, got (%d, %v)", len(tasks), err)
	}

	// Duplicate id is refused and keeps the form open.
	m = press(m, "t")
	m, _ = m.Update(taskSubmitMsg{task: task})
	if m.mode != modeTaskForm || m.taskForm.message == "" {
		t.Fatalf("duplicate id must keep the form with a message")
	}

	if asArun := press(newDashboard(t, db, ctx, "arun"), "t"); asArun.mode != modeBrowse {
		t.Fatalf("employees must not open the task form")
	}
}

func TestDashboardCreateUserFlow(t *testing.T) {
	db, ctx := setupTUIDB(t)

	m := press(newDashboard(t, db, ctx, "grace"), "u")
	if m.mode != modeUserForm {
		t.Fatalf("manager must open the account form")
	}
	user := models.User{Username: "noor", Name: "Noor Haddad", Role: models.RoleEmployee}
	m, _ = m.Update(userSubmitMsg{user: user, password: "Secret123"})
	if m.mode != modeBrowse {
		t.Fatalf("account creation did not complete: %q", m.userForm.message)
	}

	if _, err := service.New(db).Authenticate(ctx, "noor", "Secret123"); err != nil {
		t.Fatalf("new account cannot sign in: %v", err)
	}

	// Weak passwords are refused by the service.
	m = press(m, "u")
	m, _ = m.Update(userSubmitMsg{user: models.User{Username: "tam", Name: "Tam"}, password: "short"})
	if m.mode != modeUserForm || m.userForm.message == "" {
		t.Fatalf("weak password must keep the form with a message")
	}
}

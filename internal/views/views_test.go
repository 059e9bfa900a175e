package views

import (
	"strings"
	"testing"
)

func TestRenderTaskListBadges(t *testing.T) {
	out := RenderTaskList(NewTheme(false), []TaskRowData{
		{Name: "Buy milk", Description: "2%", Stamp: "Monday 9 February 2026 02:05 PM", Edited: true, Selected: true},
		{Name: "Walk dog", Description: "park", Stamp: "Monday 9 February 2026 02:06 PM", Completed: true},
	})
	for _, want := range []string{"> [ ] Buy milk", "[x] Walk dog", "(Edited)", "(Completed)", "02:06 PM"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in list output:\n%s", want, out)
		}
	}
	if strings.Count(out, "(Edited)") != 1 || strings.Count(out, "(Completed)") != 1 {
		t.Fatalf("unexpected badge count:\n%s", out)
	}
}

func TestRenderTaskListEmpty(t *testing.T) {
	if out := RenderTaskList(NewTheme(true), nil); !strings.Contains(out, "no tasks") {
		t.Fatalf("expected empty marker, got %q", out)
	}
}

func TestRenderPager(t *testing.T) {
	out := RenderPager(NewTheme(false), 2, 3)
	if !strings.Contains(out, " 1 ") || !strings.Contains(out, "[2]") || !strings.Contains(out, " 3 ") {
		t.Fatalf("unexpected pager: %q", out)
	}
	if RenderPager(NewTheme(false), 1, 0) != "" {
		t.Fatal("expected no pager without pages")
	}
}

func TestRenderFormLabel(t *testing.T) {
	theme := NewTheme(false)
	if out := RenderForm(theme, FormData{}); !strings.Contains(out, "Add") {
		t.Fatalf("expected Add label, got %q", out)
	}
	if out := RenderForm(theme, FormData{Editing: true}); !strings.Contains(out, "Save") {
		t.Fatalf("expected Save label, got %q", out)
	}
}

func TestRenderTabsMarksActive(t *testing.T) {
	out := RenderTabs(NewTheme(false), []string{"all", "todo", "completed"}, "todo")
	if !strings.Contains(out, "[2:todo]") || strings.Contains(out, "[1:all]") {
		t.Fatalf("unexpected tabs: %q", out)
	}
}

func TestRenderConfirmDialog(t *testing.T) {
	out := RenderConfirmDialog(NewTheme(false), ConfirmDialogData{Title: "Delete Task", Message: "Are You Sure You Want To Delete The Task"})
	if !strings.Contains(out, "Delete Task") || !strings.Contains(out, "[y] Confirm") {
		t.Fatalf("unexpected dialog: %q", out)
	}
}

func TestRenderTaskDetail(t *testing.T) {
	theme := NewTheme(false)
	if out := RenderTaskDetail(theme, TaskDetailData{}); !strings.Contains(out, "(no selection)") {
		t.Fatalf("unexpected empty detail: %q", out)
	}
	out := RenderTaskDetail(theme, TaskDetailData{Name: "Buy milk", Stamp: "stamp", Completed: true, Description: "2%"})
	for _, want := range []string{"Buy milk", "status: completed", "created: stamp", "Can't edit Completed task", "2%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in detail:\n%s", want, out)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	if RenderMarkdown("   ", false) != "" {
		t.Fatal("expected blank markdown to render empty")
	}
	if out := RenderMarkdown("**bold** note", true); !strings.Contains(out, "bold") {
		t.Fatalf("expected rendered text, got %q", out)
	}
}

func TestRenderAppStatusAndOverlay(t *testing.T) {
	out := RenderApp(NewTheme(false), AppData{
		Header:       "mytodo",
		LeftPane:     "left",
		RightPane:    "right",
		Overlay:      "dialog",
		StatusLine:   "status: warning: disk",
		StatusLevel:  "warn",
		Notification: RenderNotification("warn", "disk"),
	})
	if strings.Contains(out, "right") || !strings.Contains(out, "dialog") {
		t.Fatalf("expected overlay to replace right pane:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] disk") {
		t.Fatalf("expected notification:\n%s", out)
	}
}

// Package query derives the visible page of tasks from the full list.
package query

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/mytodo/internal/model"
)

// PageSize is the number of tasks shown per page.
const PageSize = 4

type Tab string

const (
	TabAll       Tab = "all"
	TabTodo      Tab = "todo"
	TabCompleted Tab = "completed"
)

var Tabs = []Tab{TabAll, TabTodo, TabCompleted}

func ParseTab(raw string) (Tab, error) {
	tab := Tab(strings.ToLower(strings.TrimSpace(raw)))
	switch tab {
	case TabAll, TabTodo, TabCompleted:
		return tab, nil
	case "":
		return TabAll, nil
	default:
		return "", fmt.Errorf("query: unknown tab %q (want all, todo or completed)", raw)
	}
}

type Params struct {
	Tab      Tab
	Search   string
	Page     int
	PageSize int
}

type Result struct {
	Items      []model.Task
	Matched    int
	TotalPages int
}

// Apply filters by tab, then by search, then slices out the requested page.
// A page outside [1, TotalPages] yields no items.
func Apply(tasks []model.Task, p Params) Result {
	size := p.PageSize
	if size <= 0 {
		size = PageSize
	}
	matched := Search(FilterTab(tasks, p.Tab), p.Search)
	return Result{
		Items:      Paginate(matched, p.Page, size),
		Matched:    len(matched),
		TotalPages: TotalPages(len(matched), size),
	}
}

func FilterTab(tasks []model.Task, tab Tab) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		switch tab {
		case TabTodo:
			if t.Completed {
				continue
			}
		case TabCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func Search(tasks []model.Task, text string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if model.NameContains(t.Name, text) {
			out = append(out, t)
		}
	}
	return out
}

func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

func Paginate(tasks []model.Task, page, size int) []model.Task {
	if page < 1 || size <= 0 {
		return []model.Task{}
	}
	start := (page - 1) * size
	if start >= len(tasks) {
		return []model.Task{}
	}
	end := min(start+size, len(tasks))
	out := make([]model.Task, end-start)
	copy(out, tasks[start:end])
	return out
}

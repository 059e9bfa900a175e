package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/mytodo/internal/logging"
	"github.com/sandeepkv93/mytodo/internal/model"
	"github.com/sandeepkv93/mytodo/internal/query"
	"github.com/sandeepkv93/mytodo/internal/store"
)

type Focus string

const (
	FocusName        Focus = "name"
	FocusDescription Focus = "description"
	FocusSearch      Focus = "search"
	FocusList        Focus = "list"
)

var focusOrder = []Focus{FocusName, FocusDescription, FocusSearch, FocusList}

// Toast texts shown after user actions.
const (
	toastAdded     = "Task added successfully"
	toastEdited    = "Edited successfully"
	toastDeleted   = "Deleted successfully"
	toastEmpty     = "Kindly enter task name and description"
	toastDuplicate = "Task Already Exist"
	toastCompleted = "Can't edit Completed task"

	deleteTitle   = "Delete Task"
	deleteMessage = "Are You Sure You Want To Delete The Task"
)

type StatusBar struct {
	Text    string
	IsError bool
	Warning bool
}

type GlobalKeyMap struct {
	All       string
	Todo      string
	Completed string
	Up        string
	Down      string
	Toggle    string
	Edit      string
	Delete    string
	PrevPage  string
	NextPage  string
	Theme     string
	Palette   string
	Help      string
	Quit      string
}

type ConfirmState struct {
	Active  bool
	Target  string
	Title   string
	Message string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Options struct {
	DarkMode bool
	Logger   *log.Logger
	Now      func() time.Time
}

type Model struct {
	Store   *store.Store
	Tasks   []model.Task
	Query   query.State
	Visible query.Result

	Focus     Focus
	Cursor    int
	EditingID string
	Confirm   ConfirmState

	DarkMode      bool
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	ctx    context.Context
	logger *log.Logger
	now    func() time.Time

	nameInput      textinput.Model
	descInput      textinput.Model
	searchInput    textinput.Model
	commandInput   textinput.Model
	helpModel      help.Model
	detailViewport viewport.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type AddTaskMsg struct {
	Name        string
	Description string
}

type BeginEditMsg struct {
	Name string
}

type SaveEditMsg struct {
	ID          string
	Name        string
	Description string
}

type RequestDeleteMsg struct {
	Name string
}

type ConfirmDeleteMsg struct{}

type CancelDeleteMsg struct{}

type ToggleCompleteMsg struct {
	Name string
}

type SelectTabMsg struct {
	Tab query.Tab
}

type SearchChangedMsg struct {
	Text string
}

type SelectPageMsg struct {
	Page int
}

type ToggleThemeMsg struct{}

// NewModel builds the UI around st. ctx bounds every persistence call the
// model makes.
func NewModel(ctx context.Context, st *store.Store, opts Options) Model {
	m := Model{
		Store:    st,
		Query:    query.NewState(),
		Focus:    FocusName,
		DarkMode: opts.DarkMode,
		Keys: GlobalKeyMap{
			All:       "1",
			Todo:      "2",
			Completed: "3",
			Up:        "k",
			Down:      "j",
			Toggle:    " ",
			Edit:      "e",
			Delete:    "d",
			PrevPage:  "[",
			NextPage:  "]",
			Theme:     "t",
			Palette:   "/",
			Help:      "?",
			Quit:      "q",
		},
		ctx:    ctx,
		logger: opts.Logger,
		now:    opts.Now,
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.initBubbleComponents()
	m.applyFocus()
	m.refresh()
	return m
}

func (m *Model) initBubbleComponents() {
	m.nameInput = textinput.New()
	m.nameInput.Prompt = "name> "
	m.nameInput.Placeholder = "Task name"
	m.nameInput.CharLimit = 256
	m.nameInput.Width = 40

	m.descInput = textinput.New()
	m.descInput.Prompt = "desc> "
	m.descInput.Placeholder = "Task description"
	m.descInput.CharLimit = 1024
	m.descInput.Width = 40

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "search> "
	m.searchInput.Placeholder = "filter by name"
	m.searchInput.CharLimit = 256
	m.searchInput.Width = 40

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.detailViewport = viewport.New(48, 10)
}

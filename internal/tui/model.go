package tui

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"roster/internal/api"
	"roster/internal/domain"
	"roster/internal/errors"
	"roster/internal/input"
	"roster/internal/services"
	"roster/internal/validation"
)

// Form fields in focus order.
const (
	fieldName = iota
	fieldDepartment
	fieldTaskName
	fieldDuration
	fieldHours
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Department", "Task", "Duration", "Hours"}

// noticeLimit is how many activity lines the form keeps
const noticeLimit = 5

// Model is the interactive roster form. Every mutation runs inside Update,
// so the roster is only ever touched from the bubbletea event loop.
type Model struct {
	ctx    context.Context
	roster api.API

	inputs [fieldCount]textinput.Model
	focus  int

	employees []domain.Employee
	selected  int
	tasks     []*domain.TaskRecord
	taskIndex int

	report  table.Model
	bar     progress.Model
	summary services.ReportSummary

	// notices is the activity log, oldest first
	notices []string
	err     error
}

// NewModel creates the form and loads the current roster.
func NewModel(ctx context.Context, roster api.API, tableWidth int) Model {
	m := Model{
		ctx:    ctx,
		roster: roster,
		report: table.New(
			table.WithColumns(progressColumns(tableWidth)),
			table.WithHeight(8),
			table.WithFocused(false),
			table.WithStyles(tableStyles()),
		),
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth(tableWidth)),
		),
	}

	for i := range m.inputs {
		field := textinput.New()
		field.Prompt = ""
		field.CharLimit = 255
		field.Width = 32
		m.inputs[i] = field
	}
	m.inputs[fieldDuration].Placeholder = "hours"
	m.inputs[fieldDuration].CharLimit = 9
	m.inputs[fieldHours].Placeholder = "hours"
	m.inputs[fieldHours].CharLimit = 9
	m.inputs[fieldName].Focus()

	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
			return m, nil
		case "ctrl+n":
			m.selectEmployee(m.selected + 1)
			return m, nil
		case "ctrl+p":
			m.selectEmployee(m.selected - 1)
			return m, nil
		case "pgdown":
			m.selectTask(m.taskIndex + 1)
			return m, nil
		case "pgup":
			m.selectTask(m.taskIndex - 1)
			return m, nil
		case "enter":
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" Roster "))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := labelStyle
		if i == m.focus {
			label = focusedStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if i == fieldDepartment || i == fieldDuration {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Employees"))
	b.WriteString("\n")
	if len(m.employees) == 0 {
		b.WriteString(dimStyle.Render("  No employees yet"))
		b.WriteString("\n")
	}
	for i, employee := range m.employees {
		line := employee.String()
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Tasks"))
	b.WriteString("\n")
	if len(m.tasks) == 0 {
		b.WriteString(dimStyle.Render("  No tasks assigned"))
		b.WriteString("\n")
	}
	for i, task := range m.tasks {
		status := services.StatusOf(task)
		line := fmt.Sprintf("%d. %s ", i+1, task)
		if i == m.taskIndex {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString(styleForStatus(status).Render("[" + status + "]"))
		b.WriteString("\n")
	}
	if detail := m.taskDetail(); detail != "" {
		b.WriteString("\n  ")
		b.WriteString(detail)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Progress"))
	b.WriteString("\n")
	b.WriteString(m.report.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Assignments: %d  Completed: %d  Average progress: %d%%",
		m.summary.Assignments, m.summary.Completed, m.summary.AveragePercent)))
	b.WriteString("\n\n")

	for i, notice := range m.notices {
		style := dimStyle
		if i == len(m.notices)-1 {
			style = noticeStyle
		}
		b.WriteString(style.Render(notice))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(userMessage(m.err)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		"tab: next field | enter: add employee / assign task / log hours | ctrl+n/ctrl+p: employee | pgup/pgdown: task | esc: quit"))
	return b.String()
}

// taskDetail renders the selected task's progress bar and remaining hours
func (m Model) taskDetail() string {
	if m.taskIndex >= len(m.tasks) {
		return ""
	}
	task := m.tasks[m.taskIndex]
	remaining := "done"
	if !task.Completed() {
		remaining = fmt.Sprintf("%d of %d hours left", task.RemainingHours(), task.Duration())
	}
	return m.bar.ViewAs(float64(task.ProgressPercent())/100) + "  " + dimStyle.Render(remaining)
}

func (m *Model) setFocus(field int) {
	m.inputs[m.focus].Blur()
	m.focus = field
	m.inputs[m.focus].Focus()
}

func (m *Model) selectEmployee(index int) {
	if index < 0 || index >= len(m.employees) {
		return
	}
	m.selected = index
	m.taskIndex = 0
	m.refresh()
}

func (m *Model) selectTask(index int) {
	if index < 0 || index >= len(m.tasks) {
		return
	}
	m.taskIndex = index
}

// submit runs the action that owns the focused field
func (m *Model) submit() {
	m.err = nil

	switch m.focus {
	case fieldName, fieldDepartment:
		m.addEmployee()
	case fieldTaskName, fieldDuration:
		m.assignTask()
	case fieldHours:
		m.logHours()
	}
	m.refresh()
}

func (m *Model) addEmployee() {
	employee, err := m.roster.AddEmployee(m.ctx, m.inputs[fieldName].Value(), m.inputs[fieldDepartment].Value())
	if err != nil {
		m.err = err
		return
	}
	m.inputs[fieldName].Reset()
	m.inputs[fieldDepartment].Reset()
	m.selected = employee.ID - 1
	m.taskIndex = 0
	m.record("Added employee: " + employee.String())
}

func (m *Model) assignTask() {
	employee, err := m.selectedEmployee()
	if err != nil {
		m.err = err
		return
	}
	duration, err := input.Hours("duration", m.inputs[fieldDuration].Value())
	if err != nil {
		m.err = err
		return
	}

	task, err := m.roster.AssignTask(m.ctx, employee.ID, m.inputs[fieldTaskName].Value(), duration, domain.DefaultTaskKind)
	if err != nil {
		m.err = err
		return
	}
	m.inputs[fieldTaskName].Reset()
	m.inputs[fieldDuration].Reset()
	m.taskIndex = len(m.tasks)
	m.record(fmt.Sprintf("Assigned %s to %s", task.Name(), employee.Name))
}

func (m *Model) logHours() {
	employee, err := m.selectedEmployee()
	if err != nil {
		m.err = err
		return
	}
	hours, err := input.Hours("hours", m.inputs[fieldHours].Value())
	if err != nil {
		m.err = err
		return
	}

	task, err := m.roster.LogHours(m.ctx, employee.ID, m.taskIndex, hours)
	if err != nil {
		m.err = err
		return
	}
	m.inputs[fieldHours].Reset()
	m.record(fmt.Sprintf("Logged %d hours on %s [%s]", hours, task.Name(), services.StatusOf(task)))
}

// record appends to the activity log, dropping the oldest line when full
func (m *Model) record(notice string) {
	m.notices = append(m.notices, notice)
	if len(m.notices) > noticeLimit {
		m.notices = m.notices[len(m.notices)-noticeLimit:]
	}
}

func (m *Model) selectedEmployee() (domain.Employee, error) {
	if len(m.employees) == 0 {
		return domain.Employee{}, errors.NewInvalidInputError("employee", "", "select an employee first")
	}
	return m.roster.EmployeeAt(m.ctx, m.selected)
}

// refresh reloads employees, the selected employee's tasks and the report
func (m *Model) refresh() {
	employees, err := m.roster.ListEmployees(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	m.employees = employees
	if m.selected >= len(employees) {
		m.selected = len(employees) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}

	m.tasks = nil
	if len(employees) > 0 {
		employee, err := m.selectedEmployee()
		if err != nil {
			m.err = err
			return
		}
		tasks, err := m.roster.TasksFor(m.ctx, employee.ID)
		if err != nil {
			m.err = err
			return
		}
		m.tasks = tasks
	}
	if m.taskIndex >= len(m.tasks) {
		m.taskIndex = max(len(m.tasks)-1, 0)
	}

	rows, err := m.roster.Report(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row{row.EmployeeName, row.TaskName, row.Kind, row.Status}
	}
	m.report.SetRows(tableRows)

	summary, err := m.roster.Summary(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	m.summary = summary
}

func userMessage(err error) string {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}

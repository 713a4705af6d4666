package domain

import (
	"testing"

	"roster/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeMapper(t *testing.T) {
	mapper := NewEmployeeMapper()
	employee := Employee{ID: 3, Name: "Bo", Department: "Sales"}

	dbEmployee := mapper.ToDatabase(employee)
	assert.Equal(t, &sqlite.Employee{ID: 3, Name: "Bo", Department: "Sales"}, dbEmployee)
	assert.Equal(t, employee, mapper.FromDatabase(dbEmployee))

	employees := mapper.FromDatabaseSlice([]*sqlite.Employee{dbEmployee})
	assert.Equal(t, []Employee{employee}, employees)
}

func TestTaskMapper_ToDatabase(t *testing.T) {
	task, err := NewTaskRecordOfKind("Docs", 4, KindDocumentation)
	require.NoError(t, err)
	require.NoError(t, task.AdvanceProgress(1))
	task.ID = 12

	assert.Equal(t, &sqlite.Task{
		ID:            12,
		Name:          "Docs",
		Kind:          "documentation",
		DurationHours: 4,
		HoursWorked:   1,
	}, NewTaskMapper().ToDatabase(task))
}

func TestTaskMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskMapper()

	task, err := mapper.FromDatabase(&sqlite.Task{ID: 2, Name: "Test", Kind: "testing", DurationHours: 6, HoursWorked: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), task.ID)
	assert.Equal(t, 50, task.ProgressPercent())
	assert.Equal(t, KindTesting, task.Kind())

	_, err = mapper.FromDatabase(&sqlite.Task{ID: 3, Name: "Bad", Kind: "party", DurationHours: 6})
	assert.Error(t, err)

	_, err = mapper.FromDatabase(&sqlite.Task{ID: 4, Name: "Bad", Kind: "coding", DurationHours: 0})
	assert.Error(t, err)
}

func TestTaskMapper_FromDatabaseSlice(t *testing.T) {
	tasks, err := NewMapper().Task.FromDatabaseSlice([]*sqlite.Task{
		{ID: 1, Name: "A", Kind: "coding", DurationHours: 1},
		{ID: 5, Name: "B", Kind: "review", DurationHours: 2, HoursWorked: 2},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "B", tasks[5].Name())
	assert.True(t, tasks[5].Completed())
}

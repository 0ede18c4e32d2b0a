package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/StrictHornet/keep-agent/internal/triage/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tasksInDomain(d string, n int) []domain.Task {
	tasks := make([]domain.Task, n)
	for i := range tasks {
		tasks[i] = domain.Task{Description: fmt.Sprintf("%s task %d", d, i), Domain: d}
	}
	return tasks
}

func TestImbalanceDetector_Detect(t *testing.T) {
	detector := NewImbalanceDetector(DefaultScoringConfig())

	t.Run("empty list yields exactly one warning", func(t *testing.T) {
		warnings := detector.Detect(nil)

		require.Len(t, warnings, 1)
		assert.Equal(t, NoTasksWarning, warnings[0])
	})

	t.Run("zero tasks in an expected domain", func(t *testing.T) {
		// 100 tasks, none tagged finance.
		tasks := append(tasksInDomain("health", 50), tasksInDomain("career", 50)...)

		warnings := detector.Detect(tasks)

		var finance string
		for _, w := range warnings {
			if strings.HasPrefix(w, "FINANCE") {
				finance = w
			}
		}
		require.NotEmpty(t, finance)
		assert.Contains(t, finance, "zero tasks detected")
	})

	t.Run("domain under its minimum share", func(t *testing.T) {
		// 100 tasks, 3 tagged admin: 3% is below the 5% threshold.
		tasks := append(tasksInDomain("health", 97), tasksInDomain("admin", 3)...)

		warnings := detector.Detect(tasks)

		var admin string
		for _, w := range warnings {
			if strings.HasPrefix(w, "ADMIN") {
				admin = w
			}
		}
		require.NotEmpty(t, admin)
		assert.Contains(t, admin, "only 3 task(s)")
		assert.Contains(t, admin, "(3%)")
		assert.Contains(t, admin, "below 5% threshold")
	})

	t.Run("domain above its share stays silent", func(t *testing.T) {
		// 6% learning is above the 5% threshold.
		tasks := append(tasksInDomain("learning", 6), tasksInDomain("health", 94)...)

		for _, w := range detector.Detect(tasks) {
			assert.NotContains(t, w, "LEARNING")
		}
	})

	t.Run("warnings follow threshold table order", func(t *testing.T) {
		// Everything uncategorised: every expected domain is missing.
		warnings := detector.Detect(tasksInDomain("uncategorised", 10))

		require.Len(t, warnings, 7)
		order := []string{"HEALTH", "CAREER", "FINANCE", "ADMIN", "RELATIONSHIPS", "LEARNING", "PERSONAL_PROJECTS"}
		for i, prefix := range order {
			assert.Contains(t, warnings[i], prefix)
		}
	})

	t.Run("uncategorised is never checked", func(t *testing.T) {
		tasks := append(tasksInDomain("health", 2), tasksInDomain("career", 2)...)
		tasks = append(tasks, tasksInDomain("finance", 2)...)
		tasks = append(tasks, tasksInDomain("admin", 1)...)
		tasks = append(tasks, tasksInDomain("relationships", 1)...)
		tasks = append(tasks, tasksInDomain("learning", 1)...)
		tasks = append(tasks, tasksInDomain("personal_projects", 1)...)

		for _, w := range detector.Detect(tasks) {
			assert.NotContains(t, w, "UNCATEGORISED")
		}
	})

	t.Run("balanced distribution yields no warnings", func(t *testing.T) {
		var tasks []domain.Task
		for _, d := range []string{"health", "career", "finance", "admin", "relationships", "learning", "personal_projects"} {
			tasks = append(tasks, tasksInDomain(d, 10)...)
		}

		assert.Empty(t, detector.Detect(tasks))
	})

	t.Run("domain counting is case-insensitive", func(t *testing.T) {
		tasks := []domain.Task{
			{Description: "a", Domain: "Health"},
			{Description: "b", Domain: "HEALTH"},
		}

		for _, w := range detector.Detect(tasks) {
			assert.NotContains(t, w, "HEALTH:")
		}
	})
}

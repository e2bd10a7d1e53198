package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pdxmph/todos-tui/internal/todo"
)

// CreateFixturesStore creates a database seeded with realistic sample todos
func CreateFixturesStore(dbPath string) error {
	// Initialize empty database
	if err := Initialize(dbPath); err != nil {
		return fmt.Errorf("initializing fixtures database: %w", err)
	}

	backend := New(dbPath)
	defer backend.Close()

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	nextWeek := now.AddDate(0, 0, 7)

	fixtures := []todo.Todo{
		{
			Title:       "Write quarterly report",
			Description: "Pull numbers from the dashboard and summarize the Q3 launches.",
			Category:    todo.CategoryWork,
			Priority:    todo.PriorityHigh,
			DueDate:     &yesterday,
		},
		{
			Title:    "Book dentist appointment",
			Category: todo.CategoryHealth,
			Priority: todo.PriorityMedium,
			DueDate:  &now,
		},
		{
			Title:       "Finish Go generics chapter",
			Description: "Last chapter of the book, then the exercises.",
			Category:    todo.CategoryLearning,
			Priority:    todo.PriorityLow,
			DueDate:     &tomorrow,
		},
		{
			Title:    "Pay credit card bill",
			Category: todo.CategoryFinance,
			Priority: todo.PriorityUrgent,
			DueDate:  &nextWeek,
		},
		{
			Title:       "Plan weekend hike",
			Description: "Check the weather first.",
			Category:    todo.CategoryPersonal,
			Priority:    todo.PriorityLow,
		},
		{
			Title:     "Renew passport",
			Category:  todo.CategoryOther,
			Priority:  todo.PriorityMedium,
			Completed: true,
		},
	}

	for i := range fixtures {
		fixtures[i].ID = uuid.NewString()
		created := now.AddDate(0, 0, -len(fixtures)+i)
		fixtures[i].CreatedAt = created
		fixtures[i].UpdatedAt = created
	}

	if err := backend.Save(fixtures); err != nil {
		return fmt.Errorf("seeding fixtures: %w", err)
	}

	return nil
}

// Package progression holds the lesson unlock rules and the quiz state
// machine. It performs no I/O; callers feed it lessons, questions and the
// user's completion set.
package progression

import (
	"sort"

	"github.com/DanRulev/finquest.git/internal/models"
)

// ResolveLessons orders lessons by Order and derives per-user completion and
// lock flags. A lesson is locked iff it is not the first one and its
// predecessor has not been completed.
func ResolveLessons(lessons []models.Lesson, completed models.CompletedSet) []models.LessonView {
	sorted := make([]models.Lesson, len(lessons))
	copy(sorted, lessons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	views := make([]models.LessonView, 0, len(sorted))
	for i, lesson := range sorted {
		views = append(views, models.LessonView{
			Lesson:      lesson,
			Number:      i + 1,
			IsCompleted: completed.Has(lesson.ID),
			IsLocked:    i > 0 && !completed.Has(sorted[i-1].ID),
		})
	}

	return views
}

// FindLesson returns the view with the given lesson id.
func FindLesson(views []models.LessonView, lessonID int64) (models.LessonView, bool) {
	for _, v := range views {
		if v.ID == lessonID {
			return v, true
		}
	}
	return models.LessonView{}, false
}

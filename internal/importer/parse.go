package importer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/DanRulev/finquest.git/pkg/validator"
)

const (
	SheetLessons   = "Lessons"
	SheetQuestions = "Questions"
	SheetContent   = "Content"

	listSeparator = "|"
)

type lessonRow struct {
	Order       int    `validate:"min=1"`
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=1000"`
	Difficulty  string `validate:"oneof=easy medium hard"`
	XP          int    `validate:"min=1,max=1000"`
}

type questionRow struct {
	LessonOrder   int      `validate:"min=1"`
	Title         string   `validate:"required"`
	Options       []string `validate:"min=2,dive,required"`
	CorrectAnswer string   `validate:"required"`
	Explanation   string
}

type pageRow struct {
	LessonOrder int      `validate:"min=1"`
	PageOrder   int      `validate:"min=1"`
	Title       string   `validate:"max=200"`
	Paragraphs  []string `validate:"min=1,dive,required"`
}

// LessonContent is one lesson with everything that belongs to it.
type LessonContent struct {
	Lesson    models.Lesson
	Questions []models.Question
	Pages     []models.LessonPage
}

type Report struct {
	Lessons   int
	Questions int
	Pages     int
	Skipped   []string
}

func (r *Report) skip(sheet string, row int, err error) {
	r.Skipped = append(r.Skipped, fmt.Sprintf("%s row %d: %v", sheet, row, err))
}

// Parse turns sheet rows into lesson content. The first row of every sheet
// is a header. Invalid rows are reported and skipped.
func Parse(sheets map[string][][]string) ([]LessonContent, Report) {
	var report Report

	lessons := make([]LessonContent, 0)
	byOrder := make(map[int]int)

	for i, row := range dataRows(sheets[SheetLessons]) {
		if row == nil {
			continue
		}
		rowNum := i + 2
		lesson, err := parseLesson(row)
		if err != nil {
			report.skip(SheetLessons, rowNum, err)
			continue
		}
		if _, dup := byOrder[lesson.Order]; dup {
			report.skip(SheetLessons, rowNum, fmt.Errorf("duplicate lesson order %d", lesson.Order))
			continue
		}
		byOrder[lesson.Order] = len(lessons)
		lessons = append(lessons, LessonContent{Lesson: lesson})
	}

	for i, row := range dataRows(sheets[SheetQuestions]) {
		if row == nil {
			continue
		}
		rowNum := i + 2
		order, question, err := parseQuestion(row)
		if err != nil {
			report.skip(SheetQuestions, rowNum, err)
			continue
		}
		idx, ok := byOrder[order]
		if !ok {
			report.skip(SheetQuestions, rowNum, fmt.Errorf("unknown lesson order %d", order))
			continue
		}
		lessons[idx].Questions = append(lessons[idx].Questions, question)
	}

	for i, row := range dataRows(sheets[SheetContent]) {
		if row == nil {
			continue
		}
		rowNum := i + 2
		order, page, err := parsePage(row)
		if err != nil {
			report.skip(SheetContent, rowNum, err)
			continue
		}
		idx, ok := byOrder[order]
		if !ok {
			report.skip(SheetContent, rowNum, fmt.Errorf("unknown lesson order %d", order))
			continue
		}
		lessons[idx].Pages = append(lessons[idx].Pages, page)
	}

	for i := range lessons {
		pages := lessons[i].Pages
		sort.SliceStable(pages, func(a, b int) bool { return pages[a].Order < pages[b].Order })

		report.Lessons++
		report.Questions += len(lessons[i].Questions)
		report.Pages += len(pages)
	}

	return lessons, report
}

func parseLesson(row []string) (models.Lesson, error) {
	order, err := intCell(row, 0, "order")
	if err != nil {
		return models.Lesson{}, err
	}
	xp, err := intCell(row, 4, "xp")
	if err != nil {
		return models.Lesson{}, err
	}

	r := lessonRow{
		Order:       order,
		Title:       cell(row, 1),
		Description: cell(row, 2),
		Difficulty:  strings.ToLower(cell(row, 3)),
		XP:          xp,
	}
	if err := validator.ValidateStruct(r); err != nil {
		return models.Lesson{}, err
	}

	return models.Lesson{
		Title:       r.Title,
		Description: r.Description,
		Difficulty:  models.Difficulty(r.Difficulty),
		XP:          r.XP,
		Order:       r.Order,
	}, nil
}

func parseQuestion(row []string) (int, models.Question, error) {
	order, err := intCell(row, 0, "lesson order")
	if err != nil {
		return 0, models.Question{}, err
	}

	r := questionRow{
		LessonOrder:   order,
		Title:         cell(row, 1),
		Options:       splitList(cell(row, 2)),
		CorrectAnswer: cell(row, 3),
		Explanation:   cell(row, 4),
	}
	if err := validator.ValidateStruct(r); err != nil {
		return 0, models.Question{}, err
	}

	q := models.Question{
		Title:         r.Title,
		Options:       models.Options(r.Options),
		CorrectAnswer: r.CorrectAnswer,
	}
	if r.Explanation != "" {
		q.Explanation.String = r.Explanation
		q.Explanation.Valid = true
	}
	if err := q.Validate(); err != nil {
		return 0, models.Question{}, err
	}

	return r.LessonOrder, q, nil
}

func parsePage(row []string) (int, models.LessonPage, error) {
	order, err := intCell(row, 0, "lesson order")
	if err != nil {
		return 0, models.LessonPage{}, err
	}
	pageOrder, err := intCell(row, 1, "page order")
	if err != nil {
		return 0, models.LessonPage{}, err
	}

	r := pageRow{
		LessonOrder: order,
		PageOrder:   pageOrder,
		Title:       cell(row, 2),
		Paragraphs:  splitList(cell(row, 3)),
	}
	if err := validator.ValidateStruct(r); err != nil {
		return 0, models.LessonPage{}, err
	}

	return r.LessonOrder, models.LessonPage{
		Order:   r.PageOrder,
		Title:   r.Title,
		Content: models.Options(r.Paragraphs),
	}, nil
}

// dataRows drops the header and blank rows.
func dataRows(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}

	out := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			out = append(out, nil)
			continue
		}
		out = append(out, row)
	}
	return out
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func intCell(row []string, i int, name string) (int, error) {
	v := cell(row, i)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number", name, v)
	}
	return n, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

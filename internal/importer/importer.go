package importer

import (
	"context"
	"fmt"

	"github.com/DanRulev/finquest.git/internal/repository"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type Importer struct {
	db  repository.TxStarter
	log *zap.Logger
}

func New(db repository.TxStarter, log *zap.Logger) *Importer {
	return &Importer{db: db, log: log}
}

// ReadWorkbook loads the rows of the known sheets. Questions and Content
// sheets are optional.
func ReadWorkbook(path string) (map[string][][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	present := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		present[name] = true
	}
	if !present[SheetLessons] {
		return nil, fmt.Errorf("workbook has no %q sheet", SheetLessons)
	}

	sheets := make(map[string][][]string, 3)
	for _, name := range []string{SheetLessons, SheetQuestions, SheetContent} {
		if !present[name] {
			continue
		}
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		sheets[name] = rows
	}

	return sheets, nil
}

func (i *Importer) ImportFile(ctx context.Context, path string) (Report, error) {
	sheets, err := ReadWorkbook(path)
	if err != nil {
		return Report{}, err
	}

	lessons, report := Parse(sheets)
	for _, s := range report.Skipped {
		i.log.Warn("row skipped", zap.String("reason", s))
	}

	if err := i.Import(ctx, lessons); err != nil {
		return report, err
	}

	i.log.Info("content imported",
		zap.String("file", path),
		zap.Int("lessons", report.Lessons),
		zap.Int("questions", report.Questions),
		zap.Int("pages", report.Pages),
		zap.Int("skipped", len(report.Skipped)),
	)
	return report, nil
}

// Import writes all lessons in one transaction. Questions and pages of every
// imported lesson are replaced.
func (i *Importer) Import(ctx context.Context, lessons []LessonContent) error {
	tx, err := i.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	content := repository.NewContentRepository(tx)
	for _, lc := range lessons {
		id, err := content.UpsertLesson(ctx, lc.Lesson)
		if err != nil {
			return err
		}
		if err := content.ReplaceQuestions(ctx, id, lc.Questions); err != nil {
			return err
		}
		if err := content.ReplacePages(ctx, id, lc.Pages); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

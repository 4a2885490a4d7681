package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mtamigo/focus/internal/domain"
)

// ImportAnchorsInput contains the parameters for bulk-importing
// anchors.
type ImportAnchorsInput struct {
	Reader io.Reader // YAML document
}

// ImportAnchorsOutput contains the import result.
type ImportAnchorsOutput struct {
	Imported int // Number of anchors created
}

// anchorFile is the YAML document shape for anchor imports.
type anchorFile struct {
	Anchors []anchorEntry `yaml:"anchors"`
}

// anchorEntry is one anchor in a YAML import file.
type anchorEntry struct {
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Start    string   `yaml:"start"`
	End      string   `yaml:"end"`
	Days     []string `yaml:"days"`
}

// ImportAnchors is the use case for loading a weekly anchor template
// from a YAML file. The import is additive; existing anchors are left
// untouched.
type ImportAnchors struct {
	anchors domain.AnchorRepository
	logger  domain.Logger
}

// NewImportAnchors creates a new ImportAnchors use case.
func NewImportAnchors(anchors domain.AnchorRepository, logger domain.Logger) *ImportAnchors {
	return &ImportAnchors{
		anchors: anchors,
		logger:  logger,
	}
}

// Execute parses the YAML document and creates every anchor in it.
// The whole document is validated before anything is saved, so a bad
// entry never leaves a partial import behind.
func (uc *ImportAnchors) Execute(_ context.Context, in ImportAnchorsInput) (*ImportAnchorsOutput, error) {
	data, err := io.ReadAll(in.Reader)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var file anchorFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}

	parsed := make([]*domain.CalendarAnchor, 0, len(file.Anchors))
	for i, entry := range file.Anchors {
		anchor, err := uc.parseEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("anchor %d: %w", i+1, err)
		}
		parsed = append(parsed, anchor)
	}

	for _, anchor := range parsed {
		id, err := uc.anchors.NextID()
		if err != nil {
			return nil, fmt.Errorf("generate anchor ID: %w", err)
		}
		anchor.ID = id
		if err := uc.anchors.Save(anchor); err != nil {
			return nil, fmt.Errorf("save anchor: %w", err)
		}
	}

	if uc.logger != nil {
		uc.logger.Info("anchor", fmt.Sprintf("imported %d anchors", len(parsed)))
	}
	return &ImportAnchorsOutput{Imported: len(parsed)}, nil
}

func (uc *ImportAnchors) parseEntry(entry anchorEntry) (*domain.CalendarAnchor, error) {
	if entry.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	start, err := domain.ParseClock(entry.Start)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseClock(entry.End)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, fmt.Errorf("end %s is not after start %s", entry.End, entry.Start)
	}

	category := domain.AnchorCategory(entry.Category)
	if entry.Category == "" {
		category = domain.AnchorOther
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("unknown category %q", entry.Category)
	}

	days := make([]time.Weekday, 0, len(entry.Days))
	for _, name := range entry.Days {
		day, err := parseWeekday(name)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		days = []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		}
	}

	return &domain.CalendarAnchor{
		Title:    entry.Title,
		Category: category,
		Days:     days,
		Start:    start,
		End:      end,
	}, nil
}

// parseWeekday accepts full English weekday names, case-insensitive.
func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

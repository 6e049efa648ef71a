package store

import (
	"context"
	"errors"
	"fmt"

	"paperflow/internal/paper/models"
	"paperflow/pkg/platform/sentinel"
)

// SeedSamplePapers loads the demo papers used by local development. Papers
// whose business key already exists are left untouched so the seeder can run
// repeatedly.
func SeedSamplePapers(ctx context.Context, s PaperStore) (int, error) {
	samples := []struct {
		paperID, title, domain string
	}{
		{"PAPER001", "Advanced Neural Networks", "AI"},
		{"PAPER002", "Climate Change Impacts", "Environmental Science"},
	}

	created := 0
	for _, sample := range samples {
		if _, err := s.FindByPaperID(ctx, sample.paperID); err == nil {
			continue
		} else if !errors.Is(err, sentinel.ErrNotFound) {
			return created, fmt.Errorf("check %s: %w", sample.paperID, err)
		}

		p, err := models.NewPaper(sample.paperID, sample.title, sample.domain, models.DefaultSlots())
		if err != nil {
			return created, fmt.Errorf("build %s: %w", sample.paperID, err)
		}
		if _, err := s.Create(ctx, p); err != nil {
			return created, fmt.Errorf("create %s: %w", sample.paperID, err)
		}
		created++
	}
	return created, nil
}

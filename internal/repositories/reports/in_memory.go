package reports

import (
	"cmp"
	"context"
	"slices"
	"sync"

	apperr "github.com/KirkDiggler/wavebattle/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu           sync.RWMutex
	reports      map[string]*Report
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory report repository
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = SystemClock{}
	}
	return &inMemoryRepository{
		reports:      make(map[string]*Report),
		timeProvider: timeProvider,
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, report *Report) error {
	if err := validateReport(report); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reports[report.ID]; exists {
		return apperr.AlreadyExistsf("report %s already exists", report.ID)
	}

	report.CreatedAt = r.timeProvider.Now()
	r.reports[report.ID] = cloneReport(report)

	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*Report, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("report ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.reports[id]
	if !exists {
		return nil, newReportNotFoundError(id)
	}

	return cloneReport(report), nil
}

func (r *inMemoryRepository) List(ctx context.Context, limit int) ([]*Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]*Report, 0, len(r.reports))
	for _, report := range r.reports {
		reports = append(reports, cloneReport(report))
	}

	slices.SortFunc(reports, func(a, b *Report) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("report ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reports[id]; !exists {
		return newReportNotFoundError(id)
	}
	delete(r.reports, id)

	return nil
}

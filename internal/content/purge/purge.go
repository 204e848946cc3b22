package purge

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/foliumhq/folium/pkg/slice"
)

// Purger removes every record a given owner has in one collection.
// Satisfied by every engine store and by the profile service.
type Purger interface {
	DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error)
}

// PurgerFunc adapts a function to the [Purger] interface.
type PurgerFunc func(ctx context.Context, ownerID string) (int64, error)

func (f PurgerFunc) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	return f(ctx, ownerID)
}

// Target is one named collection participating in the purge fan-out.
type Target struct {
	Name   string
	Purger Purger
}

// Result reports per-collection removal counts and which collections failed.
//
// The purge is best effort: a failing collection is recorded, never aborts
// the others, and the owner can simply retry.
type Result struct {
	Removed  map[string]int64 `json:"removed"`
	Failures []string         `json:"failures,omitempty"`
}

type Service struct {
	targets []Target
	logger  *slog.Logger
}

func NewService(targets []Target, logger *slog.Logger) *Service {
	return &Service{
		targets: targets,
		logger:  logger,
	}
}

// PurgeOwner deletes everything the owner has, fanning out one goroutine
// per collection.
func (service *Service) PurgeOwner(ctx context.Context, ownerID string) Result {
	type outcome struct {
		name    string
		removed int64
		err     error
	}

	outcomes := make([]outcome, len(service.targets))

	var wg sync.WaitGroup
	for i, target := range service.targets {
		wg.Add(1)
		go func(i int, target Target) {
			defer wg.Done()
			removed, err := target.Purger.DeleteAllByOwner(ctx, ownerID)
			outcomes[i] = outcome{name: target.Name, removed: removed, err: err}
		}(i, target)
	}
	wg.Wait()

	result := Result{Removed: make(map[string]int64, len(service.targets))}

	failed := slice.Filter(outcomes, func(o outcome) bool { return o.err != nil })
	for _, o := range failed {
		service.logger.Error("account_purge_target_failed",
			slog.String("owner_id", ownerID),
			slog.String("collection", o.name),
			slog.String("error", o.err.Error()),
		)
	}
	result.Failures = slice.Map(failed, func(o outcome) string { return o.name })
	sort.Strings(result.Failures)

	for _, o := range outcomes {
		if o.err == nil {
			result.Removed[o.name] = o.removed
		}
	}

	service.logger.Warn("account_purged",
		slog.String("owner_id", ownerID),
		slog.Int("collections", len(result.Removed)),
		slog.Int("failures", len(result.Failures)),
	)
	return result
}

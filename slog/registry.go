// Package slog provides logging decorators for juriscraper interfaces.
package slog

import (
	"encoding/binary"
	"log/slog"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"

	"github.com/ttys0dev/juriscraper"
)

// Sizing for the warning deduplication filter. Court ids number in the
// hundreds, so false positives are effectively free.
const (
	dedupeExpectedItems     = 10000
	dedupeFalsePositiveRate = 0.01
)

// Ensure LoggingRegistry implements juriscraper.ShortDescriptionRegistry.
var _ juriscraper.ShortDescriptionRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ShortDescriptionRegistry and reports courts that
// have no parsing rule. Each court's warning carries a stable fingerprint
// for alert grouping and is emitted once per process, deduplicated through
// a Bloom filter.
type LoggingRegistry struct {
	next   juriscraper.ShortDescriptionRegistry
	logger *slog.Logger

	mu   sync.Mutex
	seen *bloom.BloomFilter
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next juriscraper.ShortDescriptionRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{
		next:   next,
		logger: logger,
		seen:   bloom.NewWithEstimates(dedupeExpectedItems, dedupeFalsePositiveRate),
	}
}

// Derive delegates to the wrapped registry, logging a deduplicated warning
// when the court has no rule.
func (r *LoggingRegistry) Derive(courtID, subject, docketNumber, caseName string) (string, bool) {
	short, ok := r.next.Derive(courtID, subject, docketNumber, caseName)
	if !ok {
		fingerprint := courtID + "-not-parsing-short-description"
		if r.firstSighting(fingerprint) {
			r.logger.Error("short description has no parsing for bankruptcy court",
				"court", courtID,
				"fingerprint", fingerprint,
			)
		}
	}
	return short, ok
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(courtID string, rule juriscraper.ShortDescriptionRule) {
	r.next.Register(courtID, rule)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []string {
	return r.next.List()
}

func (r *LoggingRegistry) firstSighting(fingerprint string) bool {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], xxhash.Sum64String(fingerprint))
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.seen.TestAndAdd(key[:])
}

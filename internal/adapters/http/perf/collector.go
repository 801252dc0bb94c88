package perf

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultRingSize is the default capacity of the ring buffer.
const DefaultRingSize = 4096

// EntryKind distinguishes request vs query entries.
type EntryKind uint8

const (
	KindRequest EntryKind = iota
	KindQuery
)

// Entry is a single timing record stored in the ring buffer.
type Entry struct {
	Kind       EntryKind
	Label      string // "METHOD /path" for requests, store operation for queries
	StatusCode int    // 0 for queries
	DurationMs float64
	At         time.Time
}

// Collector is a fixed-size ring buffer of timing entries.
// When full, the oldest entry is overwritten. Aggregation happens on Snapshot only.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	total   atomic.Int64
}

// NewCollector creates a collector with the given ring buffer capacity.
// PRE: size > 0 (non-positive sizes fall back to DefaultRingSize)
// POST: Returns a ready-to-use collector with pre-allocated storage
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Collector{entries: make([]Entry, size)}
}

// Record appends an entry to the ring buffer.
// PRE: e.At is set
// POST: Entry stored; if buffer full, oldest entry overwritten
func (c *Collector) Record(e Entry) {
	c.mu.Lock()
	c.entries[c.next] = e
	c.next = (c.next + 1) % len(c.entries)
	c.mu.Unlock()
	c.total.Add(1)
}

// TotalRecorded returns the number of entries ever recorded.
func (c *Collector) TotalRecorded() int64 {
	return c.total.Load()
}

// LabelStat aggregates timing for one request path or store operation.
type LabelStat struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	AvgMs   float64 `json:"avg_ms"`
	MaxMs   float64 `json:"max_ms"`
	totalMs float64
}

// Snapshot holds aggregated performance data computed on read.
type Snapshot struct {
	TotalRecorded int64       `json:"total_recorded"`
	Requests      int         `json:"requests"`
	RequestP50Ms  float64     `json:"request_p50_ms"`
	RequestP95Ms  float64     `json:"request_p95_ms"`
	SlowestPaths  []LabelStat `json:"slowest_paths"`
	SlowestOps    []LabelStat `json:"slowest_ops"`
}

// Snapshot aggregates entries recorded at or after since.
// PRE: topN > 0
// POST: returns percentiles over requests and the topN slowest labels by average
func (c *Collector) Snapshot(since time.Time, topN int) Snapshot {
	c.mu.Lock()
	buf := make([]Entry, len(c.entries))
	copy(buf, c.entries)
	c.mu.Unlock()

	var durations []float64
	paths := map[string]*LabelStat{}
	ops := map[string]*LabelStat{}

	for _, e := range buf {
		if e.At.IsZero() || e.At.Before(since) {
			continue
		}
		group := ops
		if e.Kind == KindRequest {
			group = paths
			durations = append(durations, e.DurationMs)
		}
		st, ok := group[e.Label]
		if !ok {
			st = &LabelStat{Label: e.Label}
			group[e.Label] = st
		}
		st.Count++
		st.totalMs += e.DurationMs
		st.MaxMs = math.Max(st.MaxMs, e.DurationMs)
	}

	snap := Snapshot{
		TotalRecorded: c.TotalRecorded(),
		Requests:      len(durations),
		SlowestPaths:  slowest(paths, topN),
		SlowestOps:    slowest(ops, topN),
	}
	if len(durations) > 0 {
		sort.Float64s(durations)
		snap.RequestP50Ms = percentile(durations, 50)
		snap.RequestP95Ms = percentile(durations, 95)
	}
	return snap
}

// percentile interpolates the p-th percentile of a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func slowest(stats map[string]*LabelStat, n int) []LabelStat {
	list := make([]LabelStat, 0, len(stats))
	for _, st := range stats {
		st.AvgMs = st.totalMs / float64(st.Count)
		list = append(list, *st)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].AvgMs == list[j].AvgMs {
			return list[i].Label < list[j].Label
		}
		return list[i].AvgMs > list[j].AvgMs
	})
	if len(list) > n {
		list = list[:n]
	}
	return list
}

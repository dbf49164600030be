package searcher

import (
	"sync/atomic"
	"time"
)

type MoveMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Nodes      int64
	CacheHits  int64
	Candidates int
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddCacheHit()
	SetCandidates(n int)
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime  time.Time
	nodes      atomic.Int64
	cacheHits  atomic.Int64
	candidates atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.cacheHits.Store(0)
	m.candidates.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *metricsCollector) SetCandidates(n int) {
	m.candidates.Store(int64(n))
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		CacheHits:  m.cacheHits.Load(),
		Candidates: int(m.candidates.Load()),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                {}
func (m *noMetricsCollector) AddNode()              {}
func (m *noMetricsCollector) AddCacheHit()          {}
func (m *noMetricsCollector) SetCandidates(int)     {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }

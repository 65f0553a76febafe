package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func TestIncrementCounters(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name      string
		increment func()
		counter   prometheus.Counter
	}{
		{"project created", m.IncrementProjectCreated, m.ProjectCreated},
		{"sprint created", m.IncrementSprintCreated, m.SprintCreated},
		{"user story created", m.IncrementUserStoryCreated, m.UserStoryCreated},
		{"user story moved", m.IncrementUserStoryMoved, m.UserStoryMoved},
		{"task created", m.IncrementTaskCreated, m.TaskCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := getCounterValue(t, tt.counter)
			tt.increment()
			after := getCounterValue(t, tt.counter)
			if after != before+1 {
				t.Errorf("Expected counter to increment, got %f -> %f", before, after)
			}
		})
	}
}

func TestSetGauges(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		set   func(int64)
		gauge prometheus.Gauge
		count int64
	}{
		{"zero projects", m.SetProjectsTotal, m.ProjectsTotal, 0},
		{"many projects", m.SetProjectsTotal, m.ProjectsTotal, 42},
		{"active sprints", m.SetSprintsActiveTotal, m.SprintsActiveTotal, 3},
		{"user stories", m.SetUserStoriesTotal, m.UserStoriesTotal, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set(tt.count)
			value := getGaugeValue(t, tt.gauge)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestSafeExecuteCatchesPanic(t *testing.T) {
	m := getTestMetrics()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("safeExecute let a panic escape: %v", r)
		}
	}()
	m.safeExecute("test_panic", func() {
		panic("boom")
	})
}

// Helper function to get counter value
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

// Helper function to get gauge value
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

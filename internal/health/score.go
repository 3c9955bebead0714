package health

import (
	"sort"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Status classifies a composite score against fixed thresholds.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusAtRisk   Status = "at_risk"
	StatusCritical Status = "critical"
)

const (
	healthyThreshold = 70
	atRiskThreshold  = 40

	// maxDetractors caps the diagnosis list.
	maxDetractors = 3

	// ratioCap bounds a single metric's normalized ratio so one runaway
	// metric cannot mask every other one in the weighted average.
	ratioCap = 2.0
)

// Detractor is a metric falling short of its target, with the
// direction-aware shortfall below a ratio of 1.
type Detractor struct {
	Kind      model.MetricKind `json:"kind"`
	Ratio     float64          `json:"ratio"`
	Shortfall float64          `json:"shortfall"`
}

// Diagnosis explains a score.
type Diagnosis struct {
	TopDetractors []Detractor `json:"top_detractors"`
}

// Snapshot is the computed health of one business entity.
type Snapshot struct {
	EntityID string    `json:"entity_id"`
	Score    float64   `json:"score"`
	Status   Status    `json:"status"`
	Diagnosis Diagnosis `json:"diagnosis"`
}

// ComputeHealth evaluates an entity's configured metrics over its
// transactions and folds them into a single [0,100] score. Each metric
// contributes a direction-aware normalized ratio (actual/target,
// inverted when lower is better), weight-averaged and scaled by 100.
func ComputeHealth(entity model.BusinessEntity, txs []model.Transaction) Snapshot {
	snap := Snapshot{EntityID: entity.ID, Status: StatusCritical}
	if len(entity.Metrics) == 0 {
		// No configured metrics: nothing to diagnose, neutral score.
		snap.Score = 0
		return snap
	}

	var weightedSum, totalWeight float64
	var detractors []Detractor
	seen := make(map[model.MetricKind]bool)

	for _, m := range entity.Metrics {
		actual := MetricValue(m.Kind, txs).InexactFloat64()
		ratio := normalizedRatio(actual, m.Target.InexactFloat64(), m.HigherIsBetter)

		weight := m.Weight
		if weight <= 0 {
			weight = 1
		}
		weightedSum += ratio * weight
		totalWeight += weight

		if ratio < 1 && !seen[m.Kind] {
			seen[m.Kind] = true
			detractors = append(detractors, Detractor{
				Kind:      m.Kind,
				Ratio:     ratio,
				Shortfall: 1 - ratio,
			})
		}
	}

	score := 0.0
	if totalWeight > 0 {
		score = weightedSum / totalWeight * 100
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	snap.Score = score
	snap.Status = classify(score)

	sort.SliceStable(detractors, func(i, j int) bool {
		return detractors[i].Shortfall > detractors[j].Shortfall
	})
	if len(detractors) > maxDetractors {
		detractors = detractors[:maxDetractors]
	}
	snap.Diagnosis.TopDetractors = detractors

	return snap
}

// normalizedRatio maps actual vs target onto [0, ratioCap] where 1
// means exactly on target. Zero targets are treated as already met
// rather than dividing by zero.
func normalizedRatio(actual, target float64, higherIsBetter bool) float64 {
	var ratio float64
	switch {
	case higherIsBetter:
		if target <= 0 {
			return 1
		}
		ratio = actual / target
	default:
		// Lower is better: invert so staying under target scores >= 1.
		if actual <= 0 {
			return ratioCap
		}
		if target <= 0 {
			return 1
		}
		ratio = target / actual
	}
	if ratio < 0 {
		return 0
	}
	if ratio > ratioCap {
		return ratioCap
	}
	return ratio
}

func classify(score float64) Status {
	switch {
	case score >= healthyThreshold:
		return StatusHealthy
	case score >= atRiskThreshold:
		return StatusAtRisk
	default:
		return StatusCritical
	}
}

// Package services contains the deterministic core of the triage
// pipeline: the priority scorer and the domain imbalance detector.
// The classifier reasons about meaning; these services control the
// ranking with transparent, tunable weights.
package services

import (
	"sort"
	"strings"
	"time"

	"github.com/StrictHornet/keep-agent/internal/triage/domain"
)

// WordBonus pairs an urgency keyword with its score bonus.
type WordBonus struct {
	Word  string
	Bonus float64
}

// DomainWeight pairs a life domain with its impact weight.
type DomainWeight struct {
	Domain string
	Weight float64
}

// StalenessThreshold awards a bonus once a note is at least MinDays old.
type StalenessThreshold struct {
	MinDays int
	Bonus   float64
}

// ShareThreshold is the minimum share of tasks a domain is expected
// to hold before it counts as neglected.
type ShareThreshold struct {
	Domain   string
	MinShare float64
}

// ScoringConfig tunes how task attributes combine into a priority
// score. The keyword, domain, and threshold tables are ordered slices
// rather than maps: the scorer's tie-break policy is "first matching
// entry wins", so iteration order is part of the contract.
type ScoringConfig struct {
	// UrgencyBase is added when the classifier flagged urgency.
	UrgencyBase float64
	// UrgencyCap bounds the urgency sub-score regardless of how many
	// keywords matched.
	UrgencyCap float64
	// DeadlineBonus is added when a raw deadline mention is present.
	DeadlineBonus float64
	// UrgencyWordBonuses is scanned in order for each urgency word;
	// the first entry contained in the word wins its bonus.
	UrgencyWordBonuses []WordBonus
	// DomainWeights maps life domains to impact weights.
	DomainWeights []DomainWeight
	// DefaultDomainWeight applies to unknown or missing domains.
	DefaultDomainWeight float64
	// StalenessThresholds is scanned in order; the first threshold the
	// note age satisfies wins, so entries must be sorted oldest-first.
	StalenessThresholds []StalenessThreshold
	// MinimumShares drives the imbalance detector. Domains absent from
	// this table are never checked.
	MinimumShares []ShareThreshold
}

// DefaultScoringConfig returns the production weight tables.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		UrgencyBase:   30,
		UrgencyCap:    80,
		DeadlineBonus: 10,
		UrgencyWordBonuses: []WordBonus{
			{"today", 25},
			{"now", 25},
			{"immediately", 25},
			{"urgent", 20},
			{"asap", 20},
			{"critical", 20},
			{"deadline", 15},
			{"overdue", 15},
			{"tomorrow", 12},
			{"this week", 10},
			{"expires", 10},
			{"final", 8},
			{"last chance", 8},
			{"soon", 5},
		},
		DomainWeights: []DomainWeight{
			{"health", 25},
			{"finance", 22},
			{"career", 20},
			{"admin", 15},
			{"relationships", 12},
			{"learning", 10},
			{"personal_projects", 8},
			{domain.DomainUncategorised, 5},
		},
		DefaultDomainWeight: 5,
		StalenessThresholds: []StalenessThreshold{
			{180, 20},
			{90, 15},
			{30, 10},
			{14, 5},
			{0, 0},
		},
		MinimumShares: []ShareThreshold{
			{"health", 0.10},
			{"career", 0.10},
			{"finance", 0.08},
			{"admin", 0.05},
			{"relationships", 0.05},
			{"learning", 0.05},
			{"personal_projects", 0.05},
		},
	}
}

// Scorer applies deterministic priority scoring to extracted tasks.
// It is a total function over any task list: missing or malformed
// attributes degrade to a zero contribution, never an error.
type Scorer struct {
	config ScoringConfig
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(cfg ScoringConfig) *Scorer {
	return &Scorer{config: cfg}
}

// Score populates the urgency, impact, and staleness sub-scores and
// their sum on every task, then returns the list sorted descending by
// priority score. The sort is stable: equal scores keep their input
// order. An empty list is returned as-is.
func (s *Scorer) Score(tasks []domain.Task) []domain.Task {
	for i := range tasks {
		urgency := s.urgencyScore(tasks[i])
		impact := s.impactScore(tasks[i])
		staleness := s.stalenessScore(tasks[i])

		tasks[i].ScoreUrgency = urgency
		tasks[i].ScoreImpact = impact
		tasks[i].ScoreStaleness = staleness
		tasks[i].PriorityScore = urgency + impact + staleness
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].PriorityScore > tasks[j].PriorityScore
	})

	return tasks
}

// urgencyScore combines the classifier's urgency flag, keyword
// bonuses, and deadline presence, capped at UrgencyCap.
func (s *Scorer) urgencyScore(t domain.Task) float64 {
	score := 0.0

	if t.UrgencyDetected {
		score += s.config.UrgencyBase
	}

	for _, word := range t.UrgencyWords {
		normalized := strings.ToLower(strings.TrimSpace(word))
		// First table entry contained in the word wins; each word
		// contributes at most one bonus.
		for _, entry := range s.config.UrgencyWordBonuses {
			if strings.Contains(normalized, entry.Word) {
				score += entry.Bonus
				break
			}
		}
	}

	if t.DeadlineRaw != "" {
		score += s.config.DeadlineBonus
	}

	if score > s.config.UrgencyCap {
		return s.config.UrgencyCap
	}
	return score
}

// impactScore looks up the task's life domain in the weight table.
func (s *Scorer) impactScore(t domain.Task) float64 {
	d := t.NormalizedDomain()
	for _, entry := range s.config.DomainWeights {
		if entry.Domain == d {
			return entry.Weight
		}
	}
	return s.config.DefaultDomainWeight
}

// stalenessScore boosts notes that have sat unactioned. It prefers
// the note's updated timestamp over its created timestamp, requires an
// RFC 3339 value (a trailing Z is accepted as UTC), and awards the
// first threshold the age satisfies. Anything unparseable scores 0.
func (s *Scorer) stalenessScore(t domain.Task) float64 {
	raw := t.NoteUpdatedAt
	if raw == "" {
		raw = t.NoteCreatedAt
	}
	if raw == "" {
		return 0
	}

	updated, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return 0
	}

	daysOld := int(time.Since(updated).Hours() / 24)
	for _, threshold := range s.config.StalenessThresholds {
		if daysOld >= threshold.MinDays {
			return threshold.Bonus
		}
	}
	return 0
}

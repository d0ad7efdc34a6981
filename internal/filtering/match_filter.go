package filtering

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Thiwanka-1/Job-Search-Engine/internal/jobs"
	"github.com/Thiwanka-1/Job-Search-Engine/internal/logger"
	"github.com/Thiwanka-1/Job-Search-Engine/internal/matching"
	"github.com/Thiwanka-1/Job-Search-Engine/internal/profile"
	"github.com/Thiwanka-1/Job-Search-Engine/internal/utils"
)

const maxReasonLogLength = 200

type matchFilter struct {
	enabled bool
	reason  string
	config  *MatchFilterConfig
	deps    *MatchFilterDeps
}

type MatchFilterDeps struct {
	Logger      *zap.Logger
	Profile     *profile.Profile
	ExcludeFile string
}

type MatchFilterConfig struct {
	Enabled bool
	// MinimumScore is an extra floor on top of the pass verdict. Zero
	// disables it.
	MinimumScore int
}

// NewMatch creates the scoring step that gates postings on the deterministic
// match verdict.
func NewMatch(cfg *MatchFilterConfig, deps *MatchFilterDeps) Filter {
	return &matchFilter{
		enabled: cfg.Enabled,
		deps:    deps,
		config:  cfg,
	}
}

func (f *matchFilter) Name() string { return "match_score" }

func (f *matchFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *matchFilter) IsEnabled() bool { return f.enabled }

func (f *matchFilter) Validate() error {
	if f.deps == nil {
		return fmt.Errorf("deps are not initialized: filter is not usable")
	}
	if f.deps.Profile == nil {
		return fmt.Errorf("candidate profile is required when the match filter is enabled")
	}
	if f.config.MinimumScore < 0 || f.config.MinimumScore > 100 {
		return fmt.Errorf("minimum score must be within [0, 100]")
	}
	return nil
}

func (f *matchFilter) Apply(_ context.Context, v *jobs.Jobs) (*jobs.Jobs, Step, error) {
	initial := v.Len()

	f.applyMatcher(v)

	left := v.Len()
	return v, Step{Initial: initial, Dropped: initial - left, Left: left}, nil
}

func (f *matchFilter) applyMatcher(list *jobs.Jobs) {
	initial := list.Len()
	approved := make([]*jobs.Job, 0, initial)

	for _, job := range list.Items {
		result := matching.Score(f.deps.Profile, job)

		job.Match = &jobs.MatchAssessment{
			Score:      result.Score,
			Pass:       result.Pass,
			HardReject: result.HardReject,
			Reasons:    result.Reasons,
		}

		if !result.Pass || result.Score < f.config.MinimumScore {
			fields := []zap.Field{
				zap.String("job", job.Key()),
				zap.Int("score", result.Score),
				zap.Bool("hard_reject", result.HardReject),
				zap.String("reason", utils.TruncateForLog(strings.Join(result.Reasons, "; "), maxReasonLogLength)),
			}
			fields = append(fields, logger.StringFields(
				logger.StringField{Key: logger.FieldSource, Value: job.Source},
				logger.StringField{Key: logger.FieldCompany, Value: job.Company},
			)...)
			f.deps.Logger.Info("posting rejected by match score", fields...)

			if err := f.appendToExcludeFile(job, leadReason(result.Reasons)); err != nil {
				f.deps.Logger.Warn("failed to append posting to exclude file",
					zap.String("job", job.Key()),
					zap.Error(err),
				)
			}
			continue
		}

		f.deps.Logger.Info("posting approved by match score",
			zap.String("job", job.Key()),
			zap.Int("score", result.Score),
		)

		approved = append(approved, job)
	}

	list.Items = approved

	f.deps.Logger.Info("match filtering completed",
		zap.Int("initial_postings", initial),
		zap.Int("approved_postings", len(approved)),
	)
}

func (f *matchFilter) appendToExcludeFile(job *jobs.Job, reason string) error {
	path := strings.TrimSpace(f.deps.ExcludeFile)
	if path == "" {
		return nil
	}

	excluded, err := jobs.GetExcludedJobsFromFile(path)
	if err != nil {
		return fmt.Errorf("load excluded postings: %w", err)
	}

	toAppend := (&jobs.Jobs{Items: []*jobs.Job{job}}).ToExcluded(jobs.ExcludeActorMatcher, reason)
	excluded.Append(toAppend)

	if err := excluded.ToFile(path); err != nil {
		return fmt.Errorf("write excluded postings: %w", err)
	}

	f.deps.Logger.Info("posting appended to exclude file",
		zap.String("job", job.Key()),
		zap.String("exclude_file", path),
	)

	return nil
}

func leadReason(reasons []string) string {
	if len(reasons) == 0 {
		return ""
	}
	return reasons[0]
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQueryProfile outputs the query the engine will embed.
func (p *Printer) PrintQueryProfile(profile *types.QueryProfile) {
	if profile == nil || profile.IsEmpty() {
		return
	}

	var sb strings.Builder

	if profile.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", profile.Title))
	}
	if len(profile.Skills) > 0 {
		skills := strings.Join(profile.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	}
	if profile.Description != "" {
		desc := profile.Description
		if len(desc) > 45 {
			desc = desc[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("About:    %s\n", desc))
	}

	p.printBox("QUERY PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContentScores outputs the content-based ranking with the per-signal
// score breakdown.
func (p *Printer) PrintContentScores(jobs []types.ScoredJob) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Content-based matches: %d\n\n", len(jobs)))

	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		title := job.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  [%d] %s\n", i+1, job.JobID, title))
		sb.WriteString(fmt.Sprintf("    Score: %.3f", job.Similarity))
		sb.WriteString(fmt.Sprintf(" (sem %.2f, skill %.2f", job.SemanticSimilarity, job.SkillOverlap))
		if job.TitleBoost > 0 {
			sb.WriteString(fmt.Sprintf(", boost %.2f", job.TitleBoost))
		}
		sb.WriteString(")\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(jobs)-maxItemsToShow))
	}

	p.printBox("CONTENT-BASED RANKING", sb.String())
}

// PrintCollaborativeScores outputs the collaborative-filtering ranking, or a
// fallback notice when the candidate had insufficient history.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCollaborativeScores(scores []types.CFScore) {
	if len(scores) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "COLLABORATIVE: insufficient feedback history")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Collaborative matches: %d\n\n", len(scores)))

	count := min(len(scores), maxItemsToShow)
	for i := 0; i < count; i++ {
		score := scores[i]
		title := score.Title
		if title == "" {
			title = "(untitled)"
		}
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  [%d] %s\n", i+1, score.JobID, title))
		sb.WriteString(fmt.Sprintf("    Score: %.3f (raw %.3f)\n", score.Similarity, score.RawScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(scores) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(scores)-maxItemsToShow))
	}

	p.printBox("COLLABORATIVE RANKING", sb.String())
}

// PrintHybridScores outputs the fused ranking with the blend weights.
func (p *Printer) PrintHybridScores(jobs []types.ScoredJob) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder

	if jobs[0].SourceWeight != nil {
		sb.WriteString(fmt.Sprintf("Blend: content %.1f / collaborative %.1f\n\n",
			jobs[0].SourceWeight.Content, jobs[0].SourceWeight.CF))
	}

	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		title := job.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  [%d] %s\n", i+1, job.JobID, title))
		if job.FinalScore != nil {
			sb.WriteString(fmt.Sprintf("    Final: %.3f (content %.3f)\n", *job.FinalScore, job.Similarity))
		} else {
			sb.WriteString(fmt.Sprintf("    Content: %.3f\n", job.Similarity))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(jobs)-maxItemsToShow))
	}

	p.printBox("HYBRID RANKING", sb.String())
}

// PrintRecommendationSet outputs all three views of a recommendation call.
func (p *Printer) PrintRecommendationSet(set *types.RecommendationSet) {
	if set == nil {
		return
	}
	p.PrintContentScores(set.ContentBased)
	p.PrintCollaborativeScores(set.Collaborative)
	p.PrintHybridScores(set.Hybrid)
}

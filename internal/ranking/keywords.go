package ranking

import (
	"regexp"

	"github.com/VisheshJha/PromptPrune-sub000/internal/framework"
)

// keyword classes triggered by the normalized prompt. Each framework's
// table hands out fixed bonuses and penalties based on which classes fire.
var (
	contentRe       = regexp.MustCompile(`\b(write|writing|blog|article|story|post|content|essay|poem|newsletter|compose|draft)\b`)
	reportRe        = regexp.MustCompile(`\b(report|analysis|analyze|analyse|data|metrics|findings|research|assessment|review)\b`)
	reasoningRe     = regexp.MustCompile(`\b(why|how|explain|solve|reason|reasoning|logic|logical|debug|prove|deduce|think|understand)\b`)
	mathRe          = regexp.MustCompile(`\b(math|mathematical|equation|calculate|compute|formula|probability|statistics|algebra)\b`)
	professionalRe  = regexp.MustCompile(`\b(business|professional|client|stakeholder|executive|meeting|proposal|corporate|manager)\b`)
	instructionalRe = regexp.MustCompile(`\b(explain|teach|teaching|learn|learning|tutorial|guide|beginner|beginners|simple|step|steps|instructions)\b`)
)

// classes records which keyword classes fired for one prompt.
type classes struct {
	content       bool
	report        bool
	reasoning     bool
	math          bool
	professional  bool
	instructional bool
}

func detectClasses(prompt string) classes {
	return classes{
		content:       contentRe.MatchString(prompt),
		report:        reportRe.MatchString(prompt),
		reasoning:     reasoningRe.MatchString(prompt),
		math:          mathRe.MatchString(prompt),
		professional:  professionalRe.MatchString(prompt),
		instructional: instructionalRe.MatchString(prompt),
	}
}

// keywordScore is the framework-specific bonus/penalty sum for one
// prompt's keyword classes.
func keywordScore(id framework.ID, c classes) float64 {
	var s float64
	switch id {
	case framework.CoT:
		if c.reasoning && !c.content {
			s += 35
		}
		if c.math {
			s += 25
		}
		if c.content && !c.reasoning {
			s -= 20
		}
	case framework.ToT:
		if c.reasoning && !c.content {
			s += 25
		}
		if c.content {
			s += 10
		}
	case framework.APE:
		if c.content {
			s += 15
		}
		if c.instructional {
			s += 10
		}
	case framework.RACE:
		if c.professional {
			s += 35
		}
		if c.report {
			s += 30
		}
		if c.content {
			s += 15
		}
	case framework.ROSES:
		if c.professional {
			s += 20
		}
		if c.report {
			s += 15
		}
		if c.content {
			s += 10
		}
	case framework.GUIDE:
		if c.instructional {
			s += 35
		}
		if c.content {
			s += 15
		}
		if c.math {
			s -= 10
		}
	case framework.SMART:
		if c.report {
			s += 25
		}
		if c.professional {
			s += 20
		}
		if c.math {
			s += 10
		}
	case framework.CREATE:
		if c.content {
			s += 20
		}
		if c.instructional {
			s += 10
		}
	}
	return s
}

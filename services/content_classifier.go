package services

import (
	"regexp"
	"strings"

	"github.com/courtside/sports-platform/models"
)

// ClassificationResult — рубрика новости и шаблоны, которые за неё проголосовали.
type ClassificationResult struct {
	Category        models.ContentCategory `json:"category"`
	MatchedPatterns []string               `json:"matched_patterns,omitempty"`
}

// ContentClassifier — регулярная классификация спортивных новостей по
// заголовку и аннотации. Никакого обучения: фиксированная таблица правил.
type ContentClassifier interface {
	Classify(title, summary string) ClassificationResult
}

type classifierRule struct {
	category models.ContentCategory
	patterns []*regexp.Regexp
}

type regexClassifier struct {
	rules []classifierRule
}

// NewRegexClassifier строит классификатор со встроенной таблицей правил.
// Побеждает рубрика с наибольшим числом сработавших шаблонов; при равенстве —
// та, что раньше в таблице. Без единого совпадения — "general".
func NewRegexClassifier() ContentClassifier {
	return &regexClassifier{
		rules: []classifierRule{
			{
				category: models.CategoryTransfer,
				patterns: compilePatterns(
					`\btransfer(s|red)?\b`,
					`\bsign(s|ed|ing)\b`,
					`\bloan (deal|move)\b`,
					`\bcontract (extension|talks)\b`,
					`\bfree agent\b`,
				),
			},
			{
				category: models.CategoryInjury,
				patterns: compilePatterns(
					`\binjur(y|ies|ed)\b`,
					`\bout for (the )?season\b`,
					`\bruled out\b`,
					`\bhamstring\b`,
					`\b(acl|mcl) tear\b`,
					`\bsidelined\b`,
				),
			},
			{
				category: models.CategoryMatchReport,
				patterns: compilePatterns(
					`\b(beat|beats|defeated|thrash(ed)?|edge[sd]?)\b`,
					`\bfull.?time\b`,
					`\bfinal score\b`,
					`\b\d+\s*[-:]\s*\d+\b`,
					`\bcomeback win\b`,
				),
			},
			{
				category: models.CategoryMatchPreview,
				patterns: compilePatterns(
					`\bpreview\b`,
					`\bkick.?off\b`,
					`\bface[s]? off\b`,
					`\bupcoming (match|fixture|game)\b`,
					`\bpredicted (lineup|xi)\b`,
				),
			},
		},
	}
}

func compilePatterns(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		patterns[i] = regexp.MustCompile(expr)
	}
	return patterns
}

func (c *regexClassifier) Classify(title, summary string) ClassificationResult {
	text := strings.ToLower(title + "\n" + summary)

	best := ClassificationResult{Category: models.CategoryGeneral}
	bestHits := 0

	for _, rule := range c.rules {
		var matched []string
		for _, p := range rule.patterns {
			if p.MatchString(text) {
				matched = append(matched, p.String())
			}
		}
		if len(matched) > bestHits {
			bestHits = len(matched)
			best = ClassificationResult{Category: rule.category, MatchedPatterns: matched}
		}
	}
	return best
}

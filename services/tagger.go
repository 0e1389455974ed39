package services

import (
	"strings"

	"pg-atlas/config"
	"pg-atlas/models"
)

// Tagger scans free-text comments for keyword families and emits semantic
// tags. Families match independently, so contradictory tags (good-food and
// bad-food) can legitimately coexist on one listing. That ambiguity is kept,
// not resolved.
type Tagger struct {
	rules []tagRule
}

type tagRule struct {
	tag      models.Tag
	keywords []string
}

// NewTagger compiles the configured keyword families, lower-casing keywords
// once up front.
func NewTagger(rules []config.TagRule) *Tagger {
	t := &Tagger{rules: make([]tagRule, 0, len(rules))}
	for _, r := range rules {
		keywords := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
		if len(keywords) > 0 {
			t.rules = append(t.rules, tagRule{tag: r.Tag, keywords: keywords})
		}
	}
	return t
}

// Tags returns the deduplicated tag set for a comment. Empty comments yield
// an empty set; rule order in the config decides the slice order, so output
// is deterministic for a given input.
func (t *Tagger) Tags(comments string) []models.Tag {
	text := strings.ToLower(comments)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var tags []models.Tag
	seen := make(map[models.Tag]struct{})

	for _, rule := range t.rules {
		if _, dup := seen[rule.tag]; dup {
			continue
		}
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				seen[rule.tag] = struct{}{}
				tags = append(tags, rule.tag)
				break
			}
		}
	}
	return tags
}

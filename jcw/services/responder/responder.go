// Package responder answers visitor questions from a fixed topic table.
package responder

import (
	"strings"

	"jcw/jcw/utils/types"
)

type Topic string

const (
	TopicPricing    Topic = "pricing"
	TopicComparison Topic = "comparison"
	TopicPrint      Topic = "print"
	TopicOnboarding Topic = "onboarding"
	TopicCustom     Topic = "custom"
	TopicContact    Topic = "contact"
	TopicSEO        Topic = "seo"
	TopicFallback   Topic = "fallback"
)

// Rule fires when the lowercased message contains any of its keywords.
type Rule struct {
	Topic    Topic
	Keywords []string
	Response string
}

// Rules are evaluated in order and the first match wins, so "price of
// business cards" is a pricing question.
var Rules = []Rule{
	{TopicPricing, []string{"price", "cost", "how much"}, pricingResponse},
	{TopicComparison, []string{"difference", "compare", "which plan"}, comparisonResponse},
	{TopicPrint, []string{"print", "business card", "brochure"}, printResponse},
	{TopicOnboarding, []string{"start", "begin", "how do i"}, onboardingResponse},
	{TopicCustom, []string{"custom", "integration", "advanced"}, customResponse},
	{TopicContact, []string{"contact", "support", "help"}, contactResponse},
	{TopicSEO, []string{"seo", "search", "google"}, seoResponse},
}

var Fallback = Rule{Topic: TopicFallback, Response: fallbackResponse}

// Match returns the rule that answers message.
func Match(message string) Rule {
	lower := strings.ToLower(message)
	for _, rule := range Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule
			}
		}
	}
	return Fallback
}

// Respond picks the canned answer for message. The aggregate site text and the
// current page are accepted so a generative backend can be dropped in behind
// the same call; the keyword table does not read them.
func Respond(message, _ string, _ *types.PageContent) string {
	return Match(message).Response
}

package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// Sampling temperatures used for each action.
const (
	TrendTemperature = 0.7
	IdeaTemperature  = 0.8
)

// MaxTopics caps how many topics a single discovery request asks for.
const MaxTopics = 25

// ErrEmptyTerm is returned when idea generation is requested for a blank term.
var ErrEmptyTerm = errors.New("term is required")

// TrendQuery carries the constraints embedded in a trend discovery prompt.
// An empty Niche means no niche filter.
type TrendQuery struct {
	SelectedDate    string
	Niche           string
	MinSearchVolume int64
	MaxSaturation   string
}

const trendDiscoveryTemplate = `Generate a list of up to %[1]d YouTube search topics for the specific date: %[2]s.
%[3]s

The topics must meet two specific criteria:
1. The topic must have a high daily search volume, specifically over %[4]d searches on that day.
2. The topic must have an extremely low content saturation, meaning the ratio of existing videos to daily searches is less than %[5]s (videoCount / dailySearches < %[5]s).

For each topic that meets these criteria, provide the search term, a realistic but fictional estimated daily searches for %[2]s, and a realistic but fictional estimated total number of videos that exist for that search term.

CRITICAL: Respond with ONLY a valid JSON array of objects.
Each object in the array must have exactly three keys: 'term' (string), 'dailySearches' (number), and 'videoCount' (number).
Do not include any other text, markdown, or explanations before or after the JSON array.
If no topics match the strict criteria, you MUST return an empty JSON array: [].

Example of a valid response:
[
    {"term": "DIY solar-powered gadgets", "dailySearches": 150000, "videoCount": 75},
    {"term": "Beginner's guide to quantum computing", "dailySearches": 110000, "videoCount": 40}
]`

// TrendDiscovery builds the prompt asking the model for content-gap topics.
func TrendDiscovery(q TrendQuery) string {
	return fmt.Sprintf(trendDiscoveryTemplate,
		MaxTopics,
		q.SelectedDate,
		nicheInstruction(q.Niche),
		q.MinSearchVolume,
		q.MaxSaturation,
	)
}

func nicheInstruction(niche string) string {
	niche = strings.TrimSpace(niche)
	if niche == "" {
		return "The topics should be diverse and can come from any niche."
	}
	return fmt.Sprintf("The topics MUST be within the '%s' niche.", niche)
}

const ideaGenerationTemplate = `You are a creative assistant for YouTube creators. A creator wants to make a video about the topic: %q.

Your task is to provide creative, actionable ideas to help them get started.

Please provide the following:
1.  A list of exactly 5 click-worthy, engaging video titles.
2.  A brief, sample video outline with a clear structure (e.g., Intro, Main Points, Conclusion).

CRITICAL: Respond with ONLY a valid JSON object.
The object must have exactly two keys: 'titles' (an array of 5 strings) and 'outline' (a single string with markdown for formatting).
Do not include any other text, markdown, or explanations before or after the JSON object.

Example of a valid response:
{
    "titles": [
        "I Built a Solar-Powered Gadget and It Blew My Mind",
        "The ULTIMATE DIY Solar Gadget Guide (2024 Edition)",
        "Can You REALLY Power Gadgets with the Sun? Let's Find Out!",
        "5 Solar-Powered Gadgets You Can Build THIS Weekend",
        "Solar Power for Beginners: My First DIY Project"
    ],
    "outline": "### Video Outline: DIY Solar Gadgets\n\n**1. Intro Hook (0:00-0:30):**\n   - Start with a dramatic shot of the final gadget working.\n\n**2. The Parts (0:30-1:30):**\n   - Show a quick layout of all the components.\n\n**3. The Build (1:30-4:00):**\n   - A step-by-step guide of the assembly process.\n\n**4. The Test & Reveal (4:00-5:30):**\n   - Take the gadget outside and show it working.\n\n**5. Conclusion & Call to Action (5:30-6:00):**\n   - Recap and ask viewers to subscribe."
}`

// IdeaGeneration builds the prompt asking the model for titles and an outline.
func IdeaGeneration(term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", ErrEmptyTerm
	}
	return fmt.Sprintf(ideaGenerationTemplate, term), nil
}

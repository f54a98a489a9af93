package voice

import (
	"fmt"
	"strings"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
)

// SystemPrompt builds the voice assistant's instruction with candidate and
// center data for grounding. Kept shorter than the text assistant's prompt;
// spoken replies need brevity.
func SystemPrompt(candidates []domain.Candidate, centers []domain.VotingCenter, lang domain.Language) string {
	candidateLines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		candidateLines = append(candidateLines, fmt.Sprintf("%s (%s): %s", c.Name, c.Party, c.Manifesto))
	}

	centerLines := make([]string, 0, len(centers))
	for _, vc := range centers {
		centerLines = append(centerLines, fmt.Sprintf("%s in %s", vc.Name, vc.Area))
	}

	voiceLang := "Bengali"
	if lang == domain.LanguageEN {
		voiceLang = "English"
	}

	return fmt.Sprintf(`You are the Dhaka-17 Election Voice Assistant.
Speak in a friendly, formal %s voice.
Ground all answers in these candidates: %s
And these centers: %s
Be concise. If asked about voting centers, mention specific areas like Gulshan, Banani, or Baridhara.
Follow the Digital Security Act 2018 guidelines for neutrality.`,
		voiceLang,
		strings.Join(candidateLines, "\n"),
		strings.Join(centerLines, "\n"))
}

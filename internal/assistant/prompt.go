package assistant

import (
	"fmt"
	"strings"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
)

// Fixed replies returned when the upstream API cannot be reached. Callers
// always get an answer in the requested language, never an error.
const (
	apologyBN = "দুঃখিত, আমি এই মুহূর্তে আপনার প্রশ্নের উত্তর দিতে পারছি না। অনুগ্রহ করে আবার চেষ্টা করুন।"
	apologyEN = "I apologize, I cannot process your request right now. Please try again shortly."
)

func apology(lang domain.Language) string {
	if lang == domain.LanguageEN {
		return apologyEN
	}
	return apologyBN
}

// buildSystemPrompt assembles the assistant's instruction with the portal's
// candidate, event, and center data embedded as its knowledge base.
func buildSystemPrompt(candidates []domain.Candidate, events []domain.ElectionEvent, centers []domain.VotingCenter, lang domain.Language) string {
	candidateLines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		candidateLines = append(candidateLines,
			fmt.Sprintf("%s (Party: %s): Manifesto Focus - %s", c.Name, c.Party, c.Manifesto))
	}

	eventLines := make([]string, 0, len(events))
	for _, e := range events {
		eventLines = append(eventLines,
			fmt.Sprintf("%s at %s on %s", e.Title, e.Location, e.Date.Format("2006-01-02")))
	}

	centerLines := make([]string, 0, len(centers))
	for _, vc := range centers {
		centerLines = append(centerLines,
			fmt.Sprintf("Center Name: %s (%s), Area: %s, Address: %s (%s)",
				vc.Name, vc.NameBN, vc.Area, vc.Address, vc.AddressBN))
	}

	answerLang := "Bengali"
	if lang == domain.LanguageEN {
		answerLang = "English"
	}

	return fmt.Sprintf(`You are the official AI Assistant for the Dhaka-17 Constituency Election Portal.
Constituency Profile: Dhaka-17 includes high-profile areas like Gulshan (1 & 2), Banani, Baridhara (including DOHS), Dhaka Cantonment, and high-density residential zones like Bhashantek and Shahzadpur.

Your Knowledge Base:
1. Candidates and their plans:
%s

2. Upcoming events:
%s

3. Official Polling/Voting Centers:
%s

Your Goals:
- Help voters find their nearest voting center. If they provide an address or neighborhood (like "Banani" or "Gulshan"), look up the center from the list above.
- If they provide a mock NID number (starting with digits), explain that for precise individual mapping they should check the official Election Commission website, but provide the list of major centers in their area based on your knowledge base.
- Answer questions about candidate manifestos and upcoming campaign events.

Guidelines:
- Respond in %s.
- Maintain strict neutrality. Do not favor any candidate.
- Comply with the Bangladesh Digital Security Act 2018: Avoid provocative language or unverified rumors.
- Be polite, professional, and patriotic.`,
		strings.Join(candidateLines, "\n"),
		strings.Join(eventLines, "\n"),
		strings.Join(centerLines, "\n"),
		answerLang)
}

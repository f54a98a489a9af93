package domain

import "fmt"

// Language selects which side of the portal's bilingual content to address.
type Language string

const (
	LanguageBN Language = "bn"
	LanguageEN Language = "en"
)

// ParseLanguage maps a wire value to a Language. Unknown or empty values
// default to Bengali, the portal's primary language.
func ParseLanguage(s string) Language {
	if s == "en" || s == "EN" {
		return LanguageEN
	}
	return LanguageBN
}

func (l Language) String() string { return string(l) }

// Role is the session role minted at login. The candidate role exists in the
// data model but no portal operation requires it yet.
type Role string

const (
	RoleVoter     Role = "voter"
	RoleCandidate Role = "candidate"
	RoleAdmin     Role = "admin"
)

// ParseRole validates a stored role value.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleVoter, RoleCandidate, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }

// EventType is the closed set of campaign event categories.
type EventType string

const (
	EventRally   EventType = "Rally"
	EventMeeting EventType = "Meeting"
	EventSeminar EventType = "Seminar"
)

// Valid reports whether the event type belongs to the closed set.
func (t EventType) Valid() bool {
	switch t {
	case EventRally, EventMeeting, EventSeminar:
		return true
	}
	return false
}

// NoticeCategory classifies official election notices.
type NoticeCategory string

const (
	NoticeSecurity     NoticeCategory = "Security"
	NoticeLogistics    NoticeCategory = "Logistics"
	NoticeCenterUpdate NoticeCategory = "Center Update"
)

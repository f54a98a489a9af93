package domain

import "time"

// Candidate is a fixture record for a Dhaka-17 candidate. Candidates are
// fixed at load and never mutated; identifiers are unique across the set.
type Candidate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameBN      string   `json:"nameBn"`
	Party       string   `json:"party"`
	PartyBN     string   `json:"partyBn"`
	Manifesto   string   `json:"manifesto"`
	ManifestoBN string   `json:"manifestoBn"`
	FocusIssues []string `json:"focusIssues"`
	ImageURL    string   `json:"imageUrl"`
	Symbol      string   `json:"symbol"`
}

// ElectionEvent is a campaign event owned by a candidate. The attendance
// counter is the only mutable field; it moves with RSVP toggles and is not
// persisted beyond the process.
type ElectionEvent struct {
	ID              string    `json:"id"`
	CandidateID     string    `json:"candidateId"`
	Title           string    `json:"title"`
	TitleBN         string    `json:"titleBn"`
	Description     string    `json:"description"`
	DescriptionBN   string    `json:"descriptionBn"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	LocationBN      string    `json:"locationBn"`
	Type            EventType `json:"type"`
	AttendanceCount int       `json:"attendanceCount"`
}

// ElectionNotice is a read-only official notice.
type ElectionNotice struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	TitleBN   string         `json:"titleBn"`
	Content   string         `json:"content"`
	ContentBN string         `json:"contentBn"`
	Date      string         `json:"date"`
	Category  NoticeCategory `json:"category"`
}

// VotingCenter is a polling center record. Centers support full CRUD through
// the admin surface but live only in process memory.
type VotingCenter struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NameBN    string `json:"nameBn"`
	Address   string `json:"address"`
	AddressBN string `json:"addressBn"`
	MapURL    string `json:"mapUrl"`
	Area      string `json:"area"`
}

// VoterRecord is a read-only voter directory row. A record is identified by
// the (NID, date-of-birth) pair; VotingCenterID must reference an existing
// center.
type VoterRecord struct {
	NID            string `json:"nid"`
	DOB            string `json:"dob"`
	Name           string `json:"name"`
	NameBN         string `json:"nameBn"`
	FatherNameBN   string `json:"fatherNameBn"`
	MotherNameBN   string `json:"motherNameBn"`
	VotingCenterID string `json:"votingCenterId"`
	SerialNo       string `json:"serialNo"`
	VoterNo        string `json:"voterNo"`
}

// Package fixture holds the static Dhaka-17 dataset that stands in for a
// real election-commission backend. Every call returns fresh copies so the
// owning store can mutate its view without touching another.
package fixture

import (
	"time"

	"github.com/fsferdows/dhaka17-portal/internal/domain"
)

// Dataset bundles every fixture collection the portal serves.
type Dataset struct {
	Candidates []domain.Candidate
	Events     []domain.ElectionEvent
	Notices    []domain.ElectionNotice
	Centers    []domain.VotingCenter
	Voters     []domain.VoterRecord
}

// Load returns the full Dhaka-17 dataset.
func Load() Dataset {
	return Dataset{
		Candidates: Candidates(),
		Events:     Events(),
		Notices:    Notices(),
		Centers:    Centers(),
		Voters:     Voters(),
	}
}

// Candidates returns the candidate fixtures.
func Candidates() []domain.Candidate {
	return []domain.Candidate{
		{
			ID:          "1",
			Name:        "Prof. Dr. Mohammad A. Arafat",
			NameBN:      "অধ্যাপক মোহাম্মদ এ. আরাফাত",
			Party:       "Bangladesh Awami League",
			PartyBN:     "বাংলাদেশ আওয়ামী লীগ",
			Manifesto:   "Vision 2041 implementation in Dhaka-17, focusing on smart governance, Gulshan-Banani drainage modernization, and high-tech urban parks.",
			ManifestoBN: "স্মার্ট ঢাকা-১৭ বিনির্মাণে স্মার্ট গভর্নেন্স, গুলশান-বনানীর ড্রেনেজ ব্যবস্থার আধুনিকায়ন এবং হাই-টেক আরবান পার্ক তৈরি করাই আমার মূল লক্ষ্য।",
			FocusIssues: []string{"Smart Governance", "Infrastructure", "Youth Employment"},
			ImageURL:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?q=80&w=400&h=400&auto=format&fit=crop",
			Symbol:      "🚢",
		},
		{
			ID:          "2",
			Name:        "Andaleeve Rahman Partha",
			NameBN:      "আন্দালিব রহমান পার্থ",
			Party:       "Bangladesh Jatiya Party (BJP)",
			PartyBN:     "বাংলাদেশ জাতীয় পার্টি (বিজেপি)",
			Manifesto:   "Institutionalizing accountability in public services, ensuring democratic rights for all residents, and solving the Bhashantek housing crisis.",
			ManifestoBN: "সরকারি সেবায় জবাবদিহিতা নিশ্চিত করা, সকল নাগরিকের গণতান্ত্রিক অধিকার রক্ষা এবং ভাষানটেকের আবাসন সমস্যার স্থায়ী সমাধান করাই আমার অঙ্গীকার।",
			FocusIssues: []string{"Accountability", "Housing Rights", "Education"},
			ImageURL:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?q=80&w=400&h=400&auto=format&fit=crop",
			Symbol:      "🚜",
		},
		{
			ID:          "3",
			Name:        "Barrister Shahjahan Omar",
			NameBN:      "ব্যারিস্টার শাহজাহান ওমর",
			Party:       "Independent",
			PartyBN:     "স্বতন্ত্র",
			Manifesto:   "Focusing on legal reform at the local level, community policing for better security in Baridhara, and lake restoration.",
			ManifestoBN: "স্থানীয় পর্যায়ে আইনি সংস্কার, বারিধারার নিরাপত্তা বৃদ্ধিতে কমিউনিটি পুলিশিং এবং লেক পুনরুদ্ধারের ওপর গুরুত্বারোপ করব।",
			FocusIssues: []string{"Legal Reform", "Security", "Environment"},
			ImageURL:    "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?q=80&w=400&h=400&auto=format&fit=crop",
			Symbol:      "🏠",
		},
	}
}

// Events returns the campaign event fixtures.
func Events() []domain.ElectionEvent {
	return []domain.ElectionEvent{
		{
			ID:              "e1",
			CandidateID:     "1",
			Title:           "Gulshan-Banani Town Hall",
			TitleBN:         "গুলশান-বনানী টাউন হল মিটিং",
			Description:     "A direct dialogue on the digitalization of Dhaka-17 civic services.",
			DescriptionBN:   "ঢাকা-১৭ এর নাগরিক সেবা ডিজিটালাইজেশন নিয়ে সরাসরি সংলাপ।",
			Date:            time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC),
			Location:        "Gulshan Youth Club Ground",
			LocationBN:      "গুলশান ইয়ুথ ক্লাব মাঠ",
			Type:            domain.EventMeeting,
			AttendanceCount: 1240,
		},
		{
			ID:              "e2",
			CandidateID:     "2",
			Title:           "Bhashantek Upliftment Rally",
			TitleBN:         "ভাষানটেক উন্নয়ন সমাবেশ",
			Description:     "Presenting the plan for modern housing in the Bhashantek area.",
			DescriptionBN:   "ভাষানটেক এলাকায় আধুনিক আবাসন পরিকল্পনা উপস্থাপন।",
			Date:            time.Date(2025, 5, 18, 16, 0, 0, 0, time.UTC),
			Location:        "Bhashantek High School Field",
			LocationBN:      "ভাষানটেক হাই স্কুল মাঠ",
			Type:            domain.EventRally,
			AttendanceCount: 4500,
		},
		{
			ID:              "e3",
			CandidateID:     "3",
			Title:           "Baridhara Security Seminar",
			TitleBN:         "বারিধারা নিরাপত্তা সেমিনার",
			Description:     "Discussing integrated community security for Baridhara DOHS.",
			DescriptionBN:   "বারিধারা ডিওএইচএস-এর জন্য সমন্বিত নিরাপত্তা আলোচনা।",
			Date:            time.Date(2025, 5, 20, 11, 0, 0, 0, time.UTC),
			Location:        "Baridhara Society Park",
			LocationBN:      "বারিধারা সোসাইটি পার্ক",
			Type:            domain.EventSeminar,
			AttendanceCount: 620,
		},
	}
}

// Notices returns the official notice fixtures.
func Notices() []domain.ElectionNotice {
	return []domain.ElectionNotice{
		{
			ID:        "n1",
			Title:     "CCTV Installation Complete",
			TitleBN:   "সিসিটিভি ক্যামেরা স্থাপন সম্পন্ন",
			Content:   "All polling centers in Gulshan 2 have been equipped with 24/7 CCTV surveillance for enhanced security.",
			ContentBN: "গুলশান ২ এর সকল ভোট কেন্দ্রে নিরাপত্তা বৃদ্ধিতে ২৪ ঘণ্টা সিসিটিভি নজরদারি নিশ্চিত করা হয়েছে।",
			Date:      "2025-05-10",
			Category:  domain.NoticeSecurity,
		},
		{
			ID:        "n2",
			Title:     "Center Relocation Notice",
			TitleBN:   "কেন্দ্র স্থানান্তর বিজ্ঞপ্তি",
			Content:   "Center #104 has been moved from Banani Model School to Banani Community Center due to renovation.",
			ContentBN: "সংস্কার কাজের জন্য ১০৪ নং কেন্দ্রটি বনানী মডেল স্কুল থেকে বনানী কমিউনিটি সেন্টারে স্থানান্তর করা হয়েছে।",
			Date:      "2025-05-12",
			Category:  domain.NoticeCenterUpdate,
		},
		{
			ID:        "n3",
			Title:     "Mock Voting Scheduled",
			TitleBN:   "মক ভোটিং এর সময়সূচী",
			Content:   "Mock voting will be held on May 25th in all Dhaka-17 centers to familiarize voters with EVMs.",
			ContentBN: "ভোটারদের ইভিএম সম্পর্কে ধারণা দিতে ২৫ মে ঢাকা-১৭ এর সকল কেন্দ্রে মক ভোটিং অনুষ্ঠিত হবে।",
			Date:      "2025-05-14",
			Category:  domain.NoticeLogistics,
		},
	}
}

// Centers returns the polling center fixtures.
func Centers() []domain.VotingCenter {
	return []domain.VotingCenter{
		{
			ID:        "vc1",
			Name:      "Gulshan Model High School and College",
			NameBN:    "গুলশান মডেল হাই স্কুল এন্ড কলেজ",
			Address:   "Road No. 90, Gulshan 2, Dhaka",
			AddressBN: "রোড নং ৯০, গুলশান ২, ঢাকা",
			MapURL:    "https://maps.google.com/?q=Gulshan+Model+High+School+and+College",
			Area:      "Gulshan",
		},
		{
			ID:        "vc2",
			Name:      "Banani Vidyaniketan School and College",
			NameBN:    "বনানী বিদ্যানিকেতন স্কুল এন্ড কলেজ",
			Address:   "Road No. 7, Block E, Banani, Dhaka",
			AddressBN: "রোড নং ৭, ব্লক ই, বনানী, ঢাকা",
			MapURL:    "https://maps.google.com/?q=Banani+Vidyaniketan+School+and+College",
			Area:      "Banani",
		},
		{
			ID:        "vc3",
			Name:      "Baridhara High School",
			NameBN:    "বারিধারা হাই স্কুল",
			Address:   "Baridhara, Dhaka",
			AddressBN: "বারিধারা, ঢাকা",
			MapURL:    "https://maps.google.com/?q=Baridhara+High+School",
			Area:      "Baridhara",
		},
	}
}

// Voters returns the voter directory fixtures.
func Voters() []domain.VoterRecord {
	return []domain.VoterRecord{
		{
			NID:            "19902692500001",
			DOB:            "1990-01-01",
			Name:           "Rahim Ahmed",
			NameBN:         "রহিম আহমেদ",
			FatherNameBN:   "করিম আহমেদ",
			MotherNameBN:   "সোহেলী বেগম",
			VotingCenterID: "vc1",
			SerialNo:       "452",
			VoterNo:        "190-05-0452",
		},
		{
			NID:            "19852692500002",
			DOB:            "1985-05-10",
			Name:           "Fatema Khatun",
			NameBN:         "ফাতেমা খাতুন",
			FatherNameBN:   "আলি আকবর",
			MotherNameBN:   "মরিয়ম বিবি",
			VotingCenterID: "vc2",
			SerialNo:       "128",
			VoterNo:        "190-02-0128",
		},
		{
			NID:            "19952692500003",
			DOB:            "1995-12-25",
			Name:           "Sagor Hossain",
			NameBN:         "সাগর হোসেন",
			FatherNameBN:   "বেলায়েত হোসেন",
			MotherNameBN:   "নাজমা আক্তার",
			VotingCenterID: "vc3",
			SerialNo:       "891",
			VoterNo:        "190-08-0891",
		},
	}
}

package pledge

// Pledge is one catalog entry users can commit to.
type Pledge struct {
	ID          string
	Icon        string
	Title       string
	Description string
	Category    string
}

// Catalog is the fixed pledge list. IDs are stable; commitments reference
// them.
var Catalog = []Pledge{
	{
		ID:          "pledge-1",
		Icon:        "📱",
		Title:       "Reduce Daily Screen Time",
		Description: "I will reduce my daily screen time by at least 2 hours and use that time for physical activities or hobbies.",
		Category:    "Time Management",
	},
	{
		ID:          "pledge-2",
		Icon:        "😴",
		Title:       "No Phones Before Bed",
		Description: "I will not use my phone for at least 1 hour before bedtime to improve my sleep quality.",
		Category:    "Sleep Health",
	},
	{
		ID:          "pledge-3",
		Icon:        "👨‍👩‍👧‍👦",
		Title:       "Tech-Free Family Time",
		Description: "I will keep my phone away during meals and family gatherings to be more present with loved ones.",
		Category:    "Relationships",
	},
	{
		ID:          "pledge-4",
		Icon:        "🎯",
		Title:       "Focus Without Distractions",
		Description: "I will turn off notifications and keep my phone in another room when working or studying.",
		Category:    "Productivity",
	},
	{
		ID:          "pledge-5",
		Icon:        "🚶",
		Title:       "Phone-Free Walks",
		Description: "I will go for at least one walk per day without my phone to enjoy nature and clear my mind.",
		Category:    "Wellness",
	},
	{
		ID:          "pledge-6",
		Icon:        "📚",
		Title:       "Read Instead of Scroll",
		Description: "I will replace 30 minutes of social media scrolling with reading a book or article each day.",
		Category:    "Personal Growth",
	},
	{
		ID:          "pledge-7",
		Icon:        "🧘",
		Title:       "Morning Meditation",
		Description: "I will start each day with 10 minutes of meditation or mindfulness instead of immediately checking my phone.",
		Category:    "Mindfulness",
	},
	{
		ID:          "pledge-8",
		Icon:        "🏋️",
		Title:       "Exercise Before Social Media",
		Description: "I will complete my daily exercise routine before spending time on social media or entertainment apps.",
		Category:    "Health",
	},
	{
		ID:          "pledge-9",
		Icon:        "💬",
		Title:       "Meaningful Conversations",
		Description: "I will have at least one face-to-face meaningful conversation daily without checking my phone.",
		Category:    "Relationships",
	},
	{
		ID:          "pledge-10",
		Icon:        "🌙",
		Title:       "Digital Sunset",
		Description: "I will stop using all digital devices 2 hours before my intended sleep time.",
		Category:    "Sleep Health",
	},
	{
		ID:          "pledge-11",
		Icon:        "🎨",
		Title:       "Creative Time",
		Description: "I will dedicate 1 hour daily to creative activities (drawing, writing, music) without digital distractions.",
		Category:    "Personal Growth",
	},
	{
		ID:          "pledge-12",
		Icon:        "📵",
		Title:       "Weekend Digital Detox",
		Description: "I will have one day per week where I limit my phone use to essential calls and messages only.",
		Category:    "Balance",
	},
}

// Find returns the catalog pledge with the given ID, or nil.
func Find(id string) *Pledge {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

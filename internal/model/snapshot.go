package model

// ThemeColor is an accent color preset, or "custom" with a hex value.
type ThemeColor string

const (
	ThemeIndigo  ThemeColor = "indigo"
	ThemeEmerald ThemeColor = "emerald"
	ThemeRose    ThemeColor = "rose"
	ThemeAmber   ThemeColor = "amber"
	ThemeCustom  ThemeColor = "custom"
)

// Settings holds process-wide preferences. Settings are never taken from an
// imported backup; the receiving side always keeps its own.
type Settings struct {
	Language        string     `json:"language"` // "bn" or "en"
	Theme           string     `json:"theme"`    // "light" or "dark"
	ThemeColor      ThemeColor `json:"themeColor"`
	CustomHex       string     `json:"customHex,omitempty"`
	ReminderEnabled bool       `json:"reminderEnabled"`
	ReminderTime    string     `json:"reminderTime"` // HH:MM
	LastAutoBackup  string     `json:"lastAutoBackup,omitempty"`
}

// Snapshot is the full persisted state: settings plus the khata. This is the
// wire format for both local storage and backup files.
type Snapshot struct {
	Settings Settings `json:"settings"`
	Khata    Khata    `json:"khata"`
}

// DefaultSnapshot returns the built-in starting state used when nothing has
// been persisted yet (or the persisted blob is unreadable).
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Settings: Settings{
			Language:        "bn",
			Theme:           "light",
			ThemeColor:      ThemeIndigo,
			ReminderEnabled: false,
			ReminderTime:    "20:00",
		},
		Khata: Khata{
			ID:           "default",
			Name:         "My Khata",
			Transactions: []Transaction{},
			Loans:        []Loan{},
			Notes:        []MonthlyNote{},
			Categories: []Category{
				{ID: "1", Label: "বেতন", Type: TypeIncome},
				{ID: "2", Label: "উপহার", Type: TypeIncome},
				{ID: "3", Label: "খাবার", Type: TypeExpense},
				{ID: "4", Label: "বাজার", Type: TypeExpense},
				{ID: "5", Label: "ভাড়া", Type: TypeExpense},
				{ID: "6", Label: "যাতায়াত", Type: TypeExpense},
				{ID: "7", Label: "চিকিৎসা", Type: TypeExpense},
				{ID: "8", Label: "শিক্ষা", Type: TypeExpense},
			},
		},
	}
}

// Normalize replaces nil collections with empty ones so callers never have to
// nil-check optional sub-arrays from older or hand-edited backups.
func (s *Snapshot) Normalize() {
	s.Khata.Normalize()
}

// Normalize replaces nil collections with empty ones, including each loan's
// payment list.
func (k *Khata) Normalize() {
	if k.Transactions == nil {
		k.Transactions = []Transaction{}
	}
	if k.Loans == nil {
		k.Loans = []Loan{}
	}
	if k.Notes == nil {
		k.Notes = []MonthlyNote{}
	}
	if k.Categories == nil {
		k.Categories = []Category{}
	}
	for i := range k.Loans {
		if k.Loans[i].Payments == nil {
			k.Loans[i].Payments = []LoanPayment{}
		}
		if k.Loans[i].Status == "" {
			k.Loans[i].Status = StatusPending
		}
	}
}

package model

// ArchiveEntry represents one row of the myo_archive table, keyed by cardId.
// SubmitCount counts how many times the same card has been submitted and only
// ever goes up.
type ArchiveEntry struct {
	CardID           string
	URL              string
	Title            string
	Author           string
	Description      string
	Category         string
	UserID           string
	CreatorEmail     string
	Duration         int64
	FileSize         int64
	CreatedAt        string
	UpdatedAt        string
	SubmitCount      int64
	FirstSubmittedAt int64
	LastSubmittedAt  int64
}

// Record converts the entry into an ordered display record.
func (e *ArchiveEntry) Record() Record {
	return Record{
		{Label: "Card_ID", Value: e.CardID},
		{Label: "Title", Value: e.Title},
		{Label: "Author", Value: e.Author},
		{Label: "URL", Value: e.URL},
		{Label: "Category", Value: e.Category},
		{Label: "User_ID", Value: e.UserID},
		{Label: "Creator_Email", Value: e.CreatorEmail},
		{Label: "Created_At", Value: e.CreatedAt},
		{Label: "Updated_At", Value: e.UpdatedAt},
		{Label: "Submit_Count", Value: e.SubmitCount},
	}
}

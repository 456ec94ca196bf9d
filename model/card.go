package model

// Card mirrors the playlist JSON served by yoto.io, either directly or inside
// the page's __NEXT_DATA__ block. Only the fields the bot projects are mapped.
type Card struct {
	CardID           string             `json:"cardId"`
	Title            string             `json:"title"`
	UserID           string             `json:"userId"`
	CreatorEmail     string             `json:"creatorEmail"`
	Availability     string             `json:"availability"`
	Category         string             `json:"category"`
	CreatedAt        string             `json:"createdAt"`
	UpdatedAt        string             `json:"updatedAt"`
	Metadata         CardMetadata       `json:"metadata"`
	Content          CardContent        `json:"content"`
	Sharing          CardSharing        `json:"sharing"`
	ClubAvailability []ClubAvailability `json:"clubAvailability"`
}

type CardMetadata struct {
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Cover       CardCover `json:"cover"`
	Media       CardMedia `json:"media"`
}

type CardCover struct {
	ImageL string `json:"imageL"`
}

type CardMedia struct {
	Duration   int64 `json:"duration"`
	FileSize   int64 `json:"fileSize"`
	HasStreams bool  `json:"hasStreams"`
}

type CardContent struct {
	Chapters []Chapter `json:"chapters"`
}

type Chapter struct {
	Display *TrackDisplay `json:"display"`
	Tracks  []Track       `json:"tracks"`
}

type Track struct {
	TrackURL string        `json:"trackUrl"`
	Type     string        `json:"type"`
	Display  *TrackDisplay `json:"display"`
}

type TrackDisplay struct {
	Icon16x16 string `json:"icon16x16"`
}

type CardSharing struct {
	ShareLinkCreatedAt string `json:"shareLinkCreatedAt"`
	ShareCount         int64  `json:"shareCount"`
	ShareLimit         int64  `json:"shareLimit"`
}

type ClubAvailability struct {
	Store string `json:"store"`
}

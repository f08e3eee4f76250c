package model

// Guide is read-only reference content seeded outside the API. Guide ids
// are plain strings chosen at seed time.
type Guide struct {
	ID    string `bson:"_id" json:"id"`
	Title string `bson:"title" json:"title"`
	Body  string `bson:"body" json:"body"`
}

// GuideSummary is the listing projection (id and title only).
type GuideSummary struct {
	ID    string `bson:"_id" json:"id"`
	Title string `bson:"title" json:"title"`
}

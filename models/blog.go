package models

// BlogPost is a journal entry. Date is a display string, not a timestamp.
type BlogPost struct {
	ID      string `json:"id" bson:"id"`
	Title   string `json:"title" bson:"title"`
	Excerpt string `json:"excerpt" bson:"excerpt"`
	Content string `json:"content" bson:"content"`
	Date    string `json:"date" bson:"date"`
	Image   string `json:"image" bson:"image"`
}

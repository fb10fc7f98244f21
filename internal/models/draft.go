package models

// Draft is the transient, user-editable form of a post request produced by
// the prompt parser. All fields are text; empty date means "any day", empty
// time means "any time", empty caption/hashtags request auto-generation.
type Draft struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Platforms string `json:"platforms"`
	Idea      string `json:"idea"`
	Groups    string `json:"groups"`
	Caption   string `json:"caption"`
	Hashtags  string `json:"hashtags"`
	ImageURL  string `json:"image_url"`
}

// ToContentItem promotes a draft into a pending content item. The record
// store assigns the content id on append; the caller is expected to have
// validated the draft first.
func (d Draft) ToContentItem() ContentItem {
	return ContentItem{
		Date:      d.Date,
		Time:      d.Time,
		Platforms: d.Platforms,
		Idea:      d.Idea,
		Caption:   d.Caption,
		ImageURL:  d.ImageURL,
		Hashtags:  d.Hashtags,
		Groups:    d.Groups,
		Status:    StatusPending,
	}
}

package models

// PhotoPart describes the binary part of an upload.
type PhotoPart struct {
	URI         string
	FileName    string
	ContentType string
}

// Field is one text part of a multipart form.
type Field struct {
	Name  string
	Value string
}

// SubmissionPayload is everything sent for a single upload attempt.
type SubmissionPayload struct {
	Photo      PhotoPart
	UserID     string
	Caption    string
	Latitude   string
	Longitude  string
	MushroomID string
}

// Fields returns the text parts in wire order.
func (p SubmissionPayload) Fields() []Field {
	return []Field{
		{Name: "userId", Value: p.UserID},
		{Name: "caption", Value: p.Caption},
		{Name: "latitude", Value: p.Latitude},
		{Name: "longitude", Value: p.Longitude},
		{Name: "mushroomId", Value: p.MushroomID},
	}
}

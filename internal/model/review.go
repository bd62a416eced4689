package model

// Review is written by a user for a completed booking. Ratings are
// whole numbers between 1 and 5; the comment is optional.
type Review struct {
	ID        uint64 `json:"id"`
	BookingID uint64 `json:"bookingId"`
	RoomID    uint64 `json:"roomId"`
	UserName  string `json:"userName,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// Notice is an announcement published by the hotel. Notices require no
// authentication to read.
type Notice struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

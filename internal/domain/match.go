package domain

import "time"

// Match is a mutual like materialized as a single symmetric record.
// User1ID < User2ID always holds so the pair is unique regardless of which
// direction completed it.
type Match struct {
	ID        int       `json:"id" db:"id"`
	User1ID   int       `json:"user1_id" db:"user1_id"`
	User2ID   int       `json:"user2_id" db:"user2_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (m *Match) HasUser(userID int) bool {
	return m.User1ID == userID || m.User2ID == userID
}

func (m *Match) OtherUserID(userID int) (int, bool) {
	if m.User1ID == userID {
		return m.User2ID, true
	}
	if m.User2ID == userID {
		return m.User1ID, true
	}
	return 0, false
}

// OrderedPair returns the two ids in storage order (smaller first).
func OrderedPair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

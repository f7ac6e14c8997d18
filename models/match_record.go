package models

import "strings"

// MatchRecord is the single canonical record for an unordered user pair.
// UserA is always the smaller id under string comparison, so there is at most
// one record per pair regardless of who acted first.
type MatchRecord struct {
	PairID    string `dynamodbav:"pairId" json:"pairId"` // Partition Key, "<userA>#<userB>"
	UserA     string `dynamodbav:"userA" json:"userA"`
	UserB     string `dynamodbav:"userB" json:"userB"`
	LikedByA  bool   `dynamodbav:"likedByA" json:"likedByA"`
	LikedByB  bool   `dynamodbav:"likedByB" json:"likedByB"`
	IsMutual  bool   `dynamodbav:"isMutual" json:"isMutual"`
	MatchedAt string `dynamodbav:"matchedAt,omitempty" json:"matchedAt,omitempty"` // Set once, on the transition to mutual
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// CanonicalPair orders two user ids so that {a, b} and {b, a} address the
// same record.
func CanonicalPair(a, b string) (userA, userB string) {
	if strings.Compare(a, b) <= 0 {
		return a, b
	}
	return b, a
}

// PairID builds the canonical pair key for two user ids in either order.
func PairID(a, b string) string {
	userA, userB := CanonicalPair(a, b)
	return userA + "#" + userB
}

// OtherUser returns the counterpart of the given user in this record.
func (m *MatchRecord) OtherUser(userID string) string {
	if m.UserA == userID {
		return m.UserB
	}
	return m.UserA
}

// Involves reports whether the given user is one of the two parties.
func (m *MatchRecord) Involves(userID string) bool {
	return m.UserA == userID || m.UserB == userID
}

// MatchRecordsTable is the DynamoDB table name for match records
const MatchRecordsTable = "MatchRecords"

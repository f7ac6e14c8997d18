package models

// Profile defines the structure for user profiles. Profiles are owned by the
// external directory; the matching core only ever reads them.
type Profile struct {
	UserID      string      `dynamodbav:"userId" json:"userId"` // Partition Key
	Name        string      `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Age         int         `dynamodbav:"age" json:"age"` // Always >= 18, enforced at creation
	Gender      string      `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	Location    Location    `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Interests   []string    `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	Lifestyle   Lifestyle   `dynamodbav:"lifestyle,omitempty" json:"lifestyle,omitempty"`
	Preferences Preferences `dynamodbav:"preferences,omitempty" json:"preferences,omitempty"`
	CreatedAt   string      `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"` // RFC3339, used for newest-first ordering
	DistanceKm  float64     `dynamodbav:"-" json:"distanceKm,omitempty"`                  // Computed distance to the requester (not stored in DB)
}

// Location holds where the user is, either self-reported or auto-detected.
type Location struct {
	City         string  `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Country      string  `dynamodbav:"country,omitempty" json:"country,omitempty"`
	Latitude     float64 `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    float64 `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
	AutoDetected bool    `dynamodbav:"autoDetected,omitempty" json:"autoDetected,omitempty"`
}

// Lifestyle groups the optional lifestyle attributes a profile may carry.
// Empty string / zero means the attribute was never recorded.
type Lifestyle struct {
	Zodiac           string   `dynamodbav:"zodiac,omitempty" json:"zodiac,omitempty"`
	Languages        []string `dynamodbav:"languages,omitempty" json:"languages,omitempty"`
	Education        string   `dynamodbav:"education,omitempty" json:"education,omitempty"`
	RelationshipGoal string   `dynamodbav:"relationshipGoal,omitempty" json:"relationshipGoal,omitempty"`
	SmokeFrequency   string   `dynamodbav:"smokeFrequency,omitempty" json:"smokeFrequency,omitempty"`
	DrinkFrequency   string   `dynamodbav:"drinkFrequency,omitempty" json:"drinkFrequency,omitempty"`
	HeightCm         int      `dynamodbav:"heightCm,omitempty" json:"heightCm,omitempty"`
	BodyType         string   `dynamodbav:"bodyType,omitempty" json:"bodyType,omitempty"`
	EyeColor         string   `dynamodbav:"eyeColor,omitempty" json:"eyeColor,omitempty"`
	HairColor        string   `dynamodbav:"hairColor,omitempty" json:"hairColor,omitempty"`
	HasKids          string   `dynamodbav:"hasKids,omitempty" json:"hasKids,omitempty"` // "yes", "no" or "" (unknown)
	VideoChat        bool     `dynamodbav:"videoChat,omitempty" json:"videoChat,omitempty"`
}

// Preferences holds what the user wants surfaced in discovery.
type Preferences struct {
	LookingFor string `dynamodbav:"lookingFor,omitempty" json:"lookingFor,omitempty"`
	AgeMin     int    `dynamodbav:"ageMin,omitempty" json:"ageMin,omitempty"`
	AgeMax     int    `dynamodbav:"ageMax,omitempty" json:"ageMax,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"

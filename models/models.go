package models

// Placeholder used for accounts registered without a display name
const AnonymousDisplayName = "Anonymous"

type VisitCounter struct {
	Count int
}

// Account is an identity directory entry as stored by the backend
type Account struct {
	Uid         string
	Email       string
	DisplayName string
}

// AccountPage is one page of the identity directory.
// An empty NextPageToken means the listing is exhausted.
type AccountPage struct {
	Accounts      []Account
	NextPageToken string
}

type UserRecord struct {
	Uid         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName"`
}

type UserList struct {
	TotalUsers int          `json:"totalUsers"`
	Users      []UserRecord `json:"users"`
}

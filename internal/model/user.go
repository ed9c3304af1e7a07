package model

// ChatUser is the locally synced display record for a platform user,
// maintained by the kafka user worker. It only feeds conversation previews;
// profiles themselves live in the user service.
type ChatUser struct {
	ID        string `db:"id"`
	Nickname  string `db:"nickname"`
	AvatarURL string `db:"avatar_url"`
}

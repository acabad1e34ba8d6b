package common

const (
	// MinCredentialLength is the minimum length of a username and a password.
	MinCredentialLength = 5
	MaxUsernameLength   = 32

	// MaxPasswordLength is in bytes, the most bcrypt will hash.
	MaxPasswordLength = 72

	// Upper bounds in runes for author input. They keep every stored record
	// well under filex.MaxLineSize.
	MaxTitleLength   = 200
	MaxContentLength = 20000
	MaxTagsLength    = 1000
	MaxCommentLength = 2000

	// AuthorizationHeaderName carries the bearer token on API requests.
	AuthorizationHeaderName = "Authorization"
)

package presentation

const (
	AuthKey      = "Authorization"
	BearerPrefix = "Bearer "
	IdentityKey  = "identity"
	IDParam      = "id"
)

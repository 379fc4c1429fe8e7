package dto

// AuthorizeResponse is the body returned by POST /getAuthorize. Some
// deployments answer {"token": ...}, older ones {"key": ...}; callers
// must accept either.
type AuthorizeResponse struct {
	Token string `json:"token,omitempty"`
	Key   string `json:"key,omitempty"`
}

// BearerToken returns whichever token field is populated
func (r AuthorizeResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.Key
}

package dto

// RefreshInput is the body shape shared by the refresh and logout routes. The
// refresh-token guard parses it; presence is enforced there, not here,
// because an absent token is an Unauthorized failure rather than a
// validation one.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token"`
}

package api

import "time"

// --- Auth types ---

// SignupRequest is the request body for POST /api/v1/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SigninRequest is the request body for POST /api/v1/signin.
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SigninResponse carries the signed bearer token returned on sign-in.
type SigninResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a generic success acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// --- Content types ---

// CreateContentRequest is the request body for POST /api/v1/content.
// There is deliberately no owner field: ownership always comes from the
// authenticated identity.
type CreateContentRequest struct {
	Title string   `json:"title"`
	Link  string   `json:"link"`
	Type  string   `json:"type"`
	Tags  []string `json:"tags,omitempty"`
}

// ContentResponse is the JSON representation of a single content item.
type ContentResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Type      string    `json:"type"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentListResponse is the response for GET /api/v1/content.
type ContentListResponse struct {
	Content []*ContentResponse `json:"content"`
}

// --- Sharing types ---

// ShareRequest is the request body for POST /api/v1/brain/share.
type ShareRequest struct {
	Share bool `json:"share"`
}

// ShareResponse carries the public hash returned when sharing is enabled.
type ShareResponse struct {
	Hash string `json:"hash"`
}

// SharedBrainResponse is the anonymous read of a shared collection.
type SharedBrainResponse struct {
	Username string             `json:"username"`
	Content  []*ContentResponse `json:"content"`
}

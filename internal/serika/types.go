package serika

// named capabilities attachable to an API key
const (
	PermissionTextGeneration  = "text_generation"
	PermissionImageGeneration = "image_generation"
)

// a named, revocable credential owned by a user. Key carries the one-time
// plaintext value and is only present on create/regenerate responses.
type APIKey struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	CreatedAt       string   `json:"createdAt"`
	LastUsed        string   `json:"lastUsed,omitempty"`
	Permissions     []string `json:"permissions"`
	Active          bool     `json:"active"`
	TotalTokens     int64    `json:"totalTokens"`
	TotalImages     int64    `json:"totalImages"`
	HasBillingSetup bool     `json:"hasBillingSetup"`
	Key             string   `json:"key,omitempty"`
}

// server-computed usage aggregates with derived cost
type UsageResponse struct {
	Summary    UsageSummary    `json:"summary"`
	ByEndpoint []EndpointUsage `json:"byEndpoint"`
}

type UsageSummary struct {
	TotalTokens int64        `json:"totalTokens"`
	TotalImages int64        `json:"totalImages"`
	TotalCost   float64      `json:"totalCost"`
	Pricing     UsagePricing `json:"pricing"`
}

type UsagePricing struct {
	Tokens float64 `json:"tokens"`
	Images float64 `json:"images"`
}

type EndpointUsage struct {
	Endpoint      string  `json:"_id"`
	TotalRequests int64   `json:"totalRequests"`
	TotalTokens   int64   `json:"totalTokens"`
	TotalImages   int64   `json:"totalImages"`
	TotalCost     float64 `json:"totalCost"`
}

// account profile with subscription/billing state, read-only here except
// for the avatar
type User struct {
	ID                     string           `json:"_id"`
	Username               string           `json:"username"`
	Email                  string           `json:"email"`
	Avatar                 string           `json:"avatar"`
	Banner                 string           `json:"banner,omitempty"`
	JoinDate               string           `json:"joinDate"`
	IsVerified             bool             `json:"isVerified"`
	IsPremium              bool             `json:"isPremium"`
	StripeCustomerID       string           `json:"stripeCustomerId,omitempty"`
	MessageCount           *QuotaCounter    `json:"messageCount,omitempty"`
	ImageCount             *QuotaCounter    `json:"imageCount,omitempty"`
	LastPaymentDate        string           `json:"lastPaymentDate,omitempty"`
	LastPaymentStatus      string           `json:"lastPaymentStatus,omitempty"`
	SubscriptionStatus     string           `json:"subscriptionStatus,omitempty"`
	SubscriptionPlan       string           `json:"subscriptionPlan,omitempty"`
	SubscriptionPeriodEnd  string           `json:"subscriptionPeriodEnd,omitempty"`
	APISubscriptionStatus  string           `json:"apiSubscriptionStatus,omitempty"`
	APISubscriptionEnd     string           `json:"apiSubscriptionPeriodEnd,omitempty"`
	LastAPIPaymentDate     string           `json:"lastAPIPaymentDate,omitempty"`
	LastAPIPaymentStatus   string           `json:"lastAPIPaymentStatus,omitempty"`
	Preferences            *UserPreferences `json:"preferences,omitempty"`
}

type QuotaCounter struct {
	Count     int64  `json:"count"`
	Total     int64  `json:"total"`
	LastReset string `json:"lastReset"`
}

type UserPreferences struct {
	ShowNSFW bool `json:"showNSFW"`
}

// a persona usable in generation requests
type Character struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Avatar      string   `json:"avatar"`
	Creator     string   `json:"creator"`
	CreatedOn   string   `json:"createdOn"`
	Tags        []string `json:"tags"`
	IsNSFW      bool     `json:"isNSFW"`
}

type Model struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Created     int64  `json:"created"`
	OwnedBy     string `json:"owned_by"`
	Root        string `json:"root,omitempty"`
	Description string `json:"description,omitempty"`
	MaxTokens   int    `json:"max_tokens,omitempty"`
}

type ModelsResponse struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// a chat completion request in the backend's OpenAI-compatible shape plus
// the serika extensions (character persona, system prompt override)
type ChatRequest struct {
	Messages     []ChatMessage `json:"messages"`
	Model        string        `json:"model,omitempty"`
	Stream       bool          `json:"stream,omitempty"`
	CharacterID  string        `json:"character_id,omitempty"`
	Temperature  *float32      `json:"temperature,omitempty"`
	SystemPrompt string        `json:"system_prompt,omitempty"`
}

type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   TokenUsage   `json:"usage"`
}

type ImageRequest struct {
	Prompt         string `json:"prompt"`
	Model          string `json:"model,omitempty"`
	Size           string `json:"size,omitempty"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
	Steps          int    `json:"steps,omitempty"`
	Scale          float64 `json:"scale,omitempty"`
	Sampler        string `json:"sampler,omitempty"`
	Seed           int64  `json:"seed,omitempty"`
}

type ImageData struct {
	URL     string `json:"url,omitempty"`
	B64JSON string `json:"b64_json,omitempty"`
}

type ImageResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

type BillingSetupResponse struct {
	URL string `json:"url,omitempty"`
	Msg string `json:"msg,omitempty"`
}

type AvatarUploadResponse struct {
	Avatar string `json:"avatar,omitempty"`
	Msg    string `json:"msg,omitempty"`
}

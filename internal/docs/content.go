// Package docs carries the documentation and code-example content the
// dashboard presents. The content is compiled in - it describes the remote
// API, it is not fetched from it.
package docs

// a documentation section, body in markdown
type Section struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// a runnable snippet for the examples page
type Example struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

// returns all documentation sections in display order
func Sections() []Section {
	return sections
}

// looks up a section by slug
func BySlug(slug string) (Section, bool) {
	for _, section := range sections {
		if section.Slug == slug {
			return section, true
		}
	}

	return Section{}, false
}

// returns the code examples in display order
func Examples() []Example {
	return examples
}

var sections = []Section{
	{
		Slug:  "overview",
		Title: "Overview",
		Body: `# Introduction

The Serika.dev API provides endpoints for text generation, image
generation, and character interaction.

## Authentication

The API uses bearer token authentication. Include your API key in the
Authorization header of your requests:

` + "```bash" + `
curl https://beta-api.serika.dev/api/openai/v1/chat/completions \
  -H "Authorization: Bearer sk-your-api-key" \
  -H "Content-Type: application/json"
` + "```" + `

## Base URL

All API requests should be made to:

    https://beta-api.serika.dev/api/openai/v1

## Rate Limits & Billing

Rate limits and pricing depend on your subscription tier:

- Free tier: 60 requests per minute, limited model access
- Premium tier: 120 requests per minute, full model access

Token usage is metered and billed per your subscription plan. Image
generation counts as 1000 tokens per image.
`,
	},
	{
		Slug:  "chat-completions",
		Title: "Chat Completions",
		Body: `# Chat Completions API

Create chat completions with the available language models. Supports
character personas and custom system prompts.

## Endpoint: POST /chat/completions

` + "```json" + `
{
  "messages": [
    {"role": "user", "content": "Hello, how are you?"}
  ],
  "model": "gpt-4o",
  "temperature": 0.7,
  "stream": false,
  "character_id": "optional-character-id",
  "system_prompt": "Optional system instructions"
}
` + "```" + `

## Response

` + "```json" + `
{
  "id": "chatcmpl-123abc",
  "object": "chat.completion",
  "created": 1702587897,
  "model": "gpt-4o",
  "choices": [
    {
      "index": 0,
      "message": {"role": "assistant", "content": "Hello! How can I help?"},
      "finish_reason": "stop"
    }
  ],
  "usage": {"prompt_tokens": 12, "completion_tokens": 9, "total_tokens": 21}
}
` + "```" + `

List the models your key can reach with GET /models.
`,
	},
	{
		Slug:  "image-generation",
		Title: "Image Generation",
		Body: `# Image Generation API

Generate images from text prompts. Requires the image_generation
permission on your API key.

## Endpoint: POST /images/generations

` + "```json" + `
{
  "prompt": "a lighthouse at dusk, oil painting",
  "model": "serika-diffusion",
  "size": "1024x1024",
  "negative_prompt": "blurry, low quality",
  "steps": 28,
  "scale": 7.0,
  "sampler": "k_euler_ancestral",
  "seed": 42
}
` + "```" + `

The response contains one entry per generated image with either a URL or
base64-encoded data. Each image is metered as 1000 tokens.
`,
	},
	{
		Slug:  "characters",
		Title: "Characters",
		Body: `# Characters

Characters are reusable personas for chat requests. Fetch the catalog
with GET /characters, then pass a character's id as character_id in a
chat completion. The character's description and style are applied
server-side before your messages.

Characters flagged isNSFW are only returned when your account
preferences allow it.
`,
	},
	{
		Slug:  "api-keys",
		Title: "API Keys",
		Body: `# API Keys

API keys are created and managed from the dashboard. The plaintext key
value is shown exactly once, on creation or regeneration - store it
somewhere safe.

Keys carry a permission set (text_generation, image_generation) and can
be disabled without losing their usage history. Deleting a key is
permanent.

Key management itself is authenticated by your login session, never by
an API key.
`,
	},
}

var examples = []Example{
	{
		Name:     "JavaScript",
		Language: "javascript",
		Code: `const axios = require('axios');

const response = await axios.post(
  'https://beta-api.serika.dev/api/openai/v1/chat/completions',
  {
    messages: [{ role: 'user', content: 'Write a haiku about the sea.' }],
    model: 'gpt-4o',
    temperature: 0.7,
  },
  { headers: { Authorization: 'Bearer sk-your-api-key' } }
);

console.log(response.data.choices[0].message.content);
`,
	},
	{
		Name:     "Python",
		Language: "python",
		Code: `import requests

response = requests.post(
    "https://beta-api.serika.dev/api/openai/v1/chat/completions",
    headers={"Authorization": "Bearer sk-your-api-key"},
    json={
        "messages": [{"role": "user", "content": "Write a haiku about the sea."}],
        "model": "gpt-4o",
        "temperature": 0.7,
    },
)

print(response.json()["choices"][0]["message"]["content"])
`,
	},
	{
		Name:     "Curl",
		Language: "bash",
		Code: `curl -X POST https://beta-api.serika.dev/api/openai/v1/chat/completions \
  -H "Authorization: Bearer sk-your-api-key" \
  -H "Content-Type: application/json" \
  -d '{
    "messages": [{"role": "user", "content": "Write a haiku about the sea."}],
    "model": "gpt-4o"
  }'
`,
	},
}

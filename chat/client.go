package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/commutewise/commutewise/route"
)

// ErrProviderUnavailable covers every failure mode of the chat collaborator.
// There is no retry policy; callers surface FallbackMessage and move on.
var ErrProviderUnavailable = errors.New("chat: provider unavailable")

// FallbackMessage is shown when the assistant cannot answer.
const FallbackMessage = "Sorry, I encountered an error while processing your request. Please try again."

// Message roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one turn of a conversation.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Place is a map-grounded reference returned alongside a reply.
type Place struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Reply is the assistant's answer plus any place references it grounded on.
type Reply struct {
	Text   string  `json:"text"`
	Places []Place `json:"places,omitempty"`
}

// Assistant is the map-grounded chat collaborator.
type Assistant interface {
	Send(ctx context.Context, history []Message, userMessage string, location *route.Coordinate) (Reply, error)
}

const systemInstruction = `You are CommuteWise AI, a friendly and helpful commuter assistant for the Tandang Sora Jeepney Route in Quezon City, Philippines.
The route runs from Tandang Sora Avenue (Commonwealth Market) to Maharlika, Quezon City, passing Tandang Sora Market, Visayas Avenue, Congressional Avenue, Elliptical Road, Kalayaan Avenue, QC City Hall, and Maharlika Street.
Help commuters find landmarks, understand traffic patterns, and plan their trips along this route. Be concise and practical.`

// ClientOptions configures the chat Client. A zero Endpoint falls back to
// the hosted generateContent endpoint for the model.
type ClientOptions struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// Client posts conversations to a generateContent-style endpoint.
type Client struct {
	opts       ClientOptions
	httpClient *http.Client
}

const defaultEndpointFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

func NewClient(opts ClientOptions) *Client {
	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash"
	}
	if opts.Endpoint == "" {
		opts.Endpoint = fmt.Sprintf(defaultEndpointFormat, opts.Model)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	return &Client{opts: opts, httpClient: &http.Client{Timeout: opts.Timeout}}
}

type generateRequest struct {
	Model             string     `json:"model"`
	SystemInstruction string     `json:"systemInstruction"`
	Contents          []content  `json:"contents"`
	LocationBias      *latLng    `json:"locationBias,omitempty"`
	Tools             []toolSpec `json:"tools"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type toolSpec struct {
	GoogleMaps struct{} `json:"googleMaps"`
}

type generateResponse struct {
	Text   string `json:"text"`
	Places []struct {
		Title string `json:"title"`
		URI   string `json:"uri"`
	} `json:"places"`
}

// Send submits the conversation history plus the new user message, optionally
// grounded with the rider's location.
func (c *Client) Send(ctx context.Context, history []Message, userMessage string, location *route.Coordinate) (Reply, error) {
	reqBody := generateRequest{
		Model:             c.opts.Model,
		SystemInstruction: systemInstruction,
		Tools:             []toolSpec{{}},
	}
	for _, m := range history {
		reqBody.Contents = append(reqBody.Contents, content{Role: m.Role, Parts: []part{{Text: m.Text}}})
	}
	reqBody.Contents = append(reqBody.Contents, content{Role: RoleUser, Parts: []part{{Text: userMessage}}})
	if location != nil {
		reqBody.LocationBias = &latLng{Latitude: location.Lat, Longitude: location.Lng}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.opts.APIKey != "" {
		req.Header.Set("x-goog-api-key", c.opts.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Reply{}, fmt.Errorf("%w: HTTP %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Reply{}, fmt.Errorf("%w: decode: %v", ErrProviderUnavailable, err)
	}
	reply := Reply{Text: out.Text}
	if reply.Text == "" {
		reply.Text = FallbackMessage
	}
	for _, p := range out.Places {
		reply.Places = append(reply.Places, Place{Title: p.Title, URI: p.URI})
	}
	return reply, nil
}

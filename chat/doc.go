// Package chat wraps the map-grounded LLM assistant behind a small
// interface. The provider is a black box: no retries, failures surface a
// generic fallback message.
package chat

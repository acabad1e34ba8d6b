// Package advisor talks to an OpenAI-compatible chat-completions endpoint to
// produce moderation suggestions and article summaries.
//
// Every failure of the remote side (transport, non-2xx status, malformed
// JSON, unrecognised reply) surfaces as ErrUnavailable. A suggestion is only
// advice: callers never turn an advisor failure into a rejection.
package advisor

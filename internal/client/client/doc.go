// Package client talks to the StudyKeeper remote endpoint.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) with one
//     method per remote action: Register, Login, ListCourses, LoadProgress
//     and SaveProgress.
//  2. A concrete implementation (see HTTPClient) that encodes the request
//     envelope as JSON, hands it to an injected Poster, and decodes the text
//     answer into the typed result for that action.
//
// # Error Handling
//
// Only transport failures are returned as errors. An answer that is not
// JSON, or does not match the expected envelope, is returned as a result
// with OK == false and the raw text attached, so callers can always branch
// on OK. Failures reported by the service are passed through unchanged.
//
// Concurrency & Contexts
//
// HTTPClient holds no mutable state and is safe for concurrent use. Every
// call builds its own envelope. Contexts are passed down to the Poster;
// the client never sets a deadline of its own.
package client

// Package store talks to the remote document store that persists the
// nutrition log as a single file.
//
// The store contract is two operations against one well-known path: read the
// file (content plus an opaque version tag) and replace the file guarded by
// the tag the store currently holds. GitHubStore implements the contract over
// the GitHub contents API, where the version tag is the blob SHA and file
// bytes travel base64-encoded. InMemoryStore implements the same contract in
// memory, with controllable failure and tag-conflict injection, so the
// conflict paths are testable without a live network dependency.
//
// The codec functions translate between the store's transport payload and the
// macro.Data document.
package store

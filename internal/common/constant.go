package common

// SessionTokenKey is the single durable key under which the bearer token
// is persisted. Absence of the key means logged-out.
const SessionTokenKey = "authToken"

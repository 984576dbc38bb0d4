// Package fingerprint generates network-origin fingerprints from HTTP
// requests for session binding.
//
// A fingerprint is a 35-character identifier ("v1:" + 32 hex chars) derived
// by hashing the client IP address, optionally combined with the User-Agent
// header. Sessions store the fingerprint at creation time and re-validate it
// on every refresh to detect a session cookie being replayed from a
// different origin.
//
// Basic usage:
//
//	fp := fingerprint.Generate(r)
//	// ... store fp with the session ...
//	if err := fingerprint.Validate(r, storedFingerprint); err != nil {
//		// potential session hijacking - fail closed
//	}
//
// # Security Notes
//
// IP-based fingerprinting is deliberately weak:
//   - shared NAT makes distinct clients look identical
//   - mobile networks and VPNs rotate addresses mid-session
//
// It supplements session management as defense-in-depth, nothing more.
// Because false positives log legitimate users out, callers should make the
// check configurable and be ready to disable it for audiences behind
// rotating addresses.
package fingerprint

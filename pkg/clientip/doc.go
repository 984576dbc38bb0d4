// Package clientip extracts real client IP addresses from HTTP requests.
//
// It handles common proxy headers in priority order to determine the actual
// client address, which is what session fingerprinting, IP logging, and
// security auditing need when the application sits behind proxies, load
// balancers, or CDNs.
//
// Headers are checked in this order:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry of the chain)
//  4. X-Real-IP (nginx and other proxies)
//  5. RemoteAddr (direct connection)
//
// All candidates are validated with net.ParseIP and normalized; malformed
// headers are skipped silently and the function never panics:
//
//	ip := clientip.GetIP(r)
package clientip

// Package iplog records which IP addresses each account logs in from.
//
// The log is an audit aid, not an enforcement mechanism: one row per
// (user, IP) pair with first-seen, last-seen, and a usage counter. Login
// and registration record the originating address; administrators read it
// when investigating account sharing or compromise.
package iplog

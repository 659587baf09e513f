// Package config holds the validated settings structs for the textbook-rsa tools:
// logger settings and the parameters a key setup is derived from.
package config

// Package utils provides small helpers shared by the adapters and services:
// a preconfigured resty HTTP client and a time-ordered id generator.
package utils

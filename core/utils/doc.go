// Package utils provides loose conversions for query strings, form values and
// command flags, built on spf13/cast.
package utils

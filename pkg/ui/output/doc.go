// Package output prints user-facing messages.
//
// Informational output and listings go to the out writer; warnings and
// errors go to the err writer. Messages are prefixed with their kind
// ("info: ", "warning: ", "error: ") and styled through the styles package
// when color is enabled.
package output

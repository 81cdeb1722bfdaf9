// Command openapi-error inspects an error catalog.
//
// Usage:
//
//	# List error types and their HTTP status
//	openapi-error list --file errors.yaml
//
//	# Print the schemas of all error types
//	openapi-error schema
//
//	# Print the schema of one error type
//	openapi-error schema UserNotExistsError
//
//	# Print the JSON form of an instance
//	openapi-error new UserNotExistsError userId=42 message="user 42 not exists"
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

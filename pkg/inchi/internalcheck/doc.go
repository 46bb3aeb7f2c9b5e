// Package internalcheck holds source policy tests for the module. It has no
// exported API.
package internalcheck

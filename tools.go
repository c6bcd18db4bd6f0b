//go:build tools

package main

import (
	_ "github.com/golang/mock/mockgen"
	_ "github.com/segmentio/golines"
	_ "golang.org/x/vuln/cmd/govulncheck"
)

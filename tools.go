//go:build tools

// Package tools pins build tools. The Android and iOS builds of giocalc use
// gogio: go run gioui.org/cmd/gogio -target android ./giocalc
package tools

import _ "gioui.org/cmd/gogio"

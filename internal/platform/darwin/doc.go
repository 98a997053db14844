// Package darwin provides macOS display support using CoreGraphics display
// configuration. All functionality requires CGo.
// Off macOS or without CGo only the status mapping compiles.
package darwin

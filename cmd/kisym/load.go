package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xiam/kisym"
)

func loadDoc(path string, opts []kisym.Option) (*kisym.Document, error) {
	if path != "-" {
		return kisym.ReadFile(path, opts...)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return kisym.Parse(data, opts...)
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}

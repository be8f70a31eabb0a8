// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"testing"
)

func TestMigrateArgs(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no arguments defaults to up", args: nil},
		{name: "up", args: []string{"up"}},
		{name: "down", args: []string{"down"}},
		{name: "down to version", args: []string{"down", "3"}},
		{name: "status", args: []string{"status"}},
		{name: "check", args: []string{"check"}},
		{name: "unknown command", args: []string{"sideways"}, wantErr: true},
		{name: "version on up", args: []string{"up", "3"}, wantErr: true},
		{name: "negative version", args: []string{"down", "-1"}, wantErr: true},
		{name: "non-numeric version", args: []string{"down", "three"}, wantErr: true},
		{name: "too many arguments", args: []string{"down", "3", "4"}, wantErr: true},
	}

	validate := migrateArgs()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(migrateCmd, tc.args)

			if tc.wantErr && err == nil {
				t.Fatal("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/lumibase/member-service/cmd"

func main() {
	cmd.Execute()
}

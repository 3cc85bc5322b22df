// Copyright © 2024 One Concern

package main

import (
	"github.com/oneconcern/stringsync/cmd/stringsync/cmd"
)

func main() {
	cmd.Execute()
}

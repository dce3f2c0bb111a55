package main

import (
	"github.com/freddiecoleman/chia-wallet-sdk/cmd/clvm/commands"
)

func main() {
	commands.Execute()
}

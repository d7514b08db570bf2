package main

import (
	"context"
	"modfinder/cmd/modfinder/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
